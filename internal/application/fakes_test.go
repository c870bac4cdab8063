package application_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
	"eventsite/internal/ports/output"
)

type fakeEvents struct {
	rows   map[uint]entities.Event
	nextID uint
}

var _ output.EventRepository = (*fakeEvents)(nil)

func newFakeEvents() *fakeEvents {
	return &fakeEvents{rows: map[uint]entities.Event{}, nextID: 1}
}

func (f *fakeEvents) Create(_ context.Context, e *entities.Event) error {
	e.ID = f.nextID
	f.nextID++
	f.rows[e.ID] = *e
	return nil
}

func (f *fakeEvents) FindByID(_ context.Context, id uint) (*entities.Event, error) {
	e, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (f *fakeEvents) FindPublished(context.Context) ([]entities.Event, error) {
	var out []entities.Event
	for _, e := range f.rows {
		if e.WebsitePublished {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEvents) Update(_ context.Context, e *entities.Event) error {
	if _, ok := f.rows[e.ID]; !ok {
		return domain.ErrEventNotFound
	}
	f.rows[e.ID] = *e
	return nil
}

func (f *fakeEvents) SetMenuID(_ context.Context, eventID uint, menuID *uint) error {
	e, ok := f.rows[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	e.MenuID = menuID
	f.rows[eventID] = e
	return nil
}

func (f *fakeEvents) Delete(_ context.Context, id uint) error {
	if _, ok := f.rows[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeEventTypes map[uint]entities.EventType

func (f fakeEventTypes) FindByID(_ context.Context, id uint) (*entities.EventType, error) {
	t, ok := f[id]
	if !ok {
		return nil, domain.ErrEventTypeNotFound
	}
	return &t, nil
}

type fakeMenus struct {
	rows      map[uint]entities.Menu
	nextID    uint
	createErr error
}

var _ output.MenuRepository = (*fakeMenus)(nil)

func newFakeMenus() *fakeMenus {
	return &fakeMenus{rows: map[uint]entities.Menu{}, nextID: 1}
}

func (f *fakeMenus) Create(_ context.Context, m *entities.Menu) error {
	if f.createErr != nil {
		return f.createErr
	}
	m.ID = f.nextID
	f.nextID++
	f.rows[m.ID] = *m
	return nil
}

func (f *fakeMenus) FindByID(_ context.Context, id uint) (*entities.Menu, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrMenuNotFound
	}
	return &m, nil
}

func (f *fakeMenus) FindChildren(_ context.Context, parentID uint) ([]entities.Menu, error) {
	var out []entities.Menu
	for _, m := range f.rows {
		if m.ParentID != nil && *m.ParentID == parentID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sequence != out[j].Sequence {
			return out[i].Sequence < out[j].Sequence
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeMenus) Delete(ctx context.Context, id uint) error {
	if _, ok := f.rows[id]; !ok {
		return domain.ErrMenuNotFound
	}
	if err := f.DeleteChildren(ctx, id); err != nil {
		return err
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeMenus) DeleteChildren(ctx context.Context, parentID uint) error {
	children, _ := f.FindChildren(ctx, parentID)
	for _, c := range children {
		if err := f.Delete(ctx, c.ID); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeMenus) roots() []entities.Menu {
	var out []entities.Menu
	for _, m := range f.rows {
		if m.ParentID == nil {
			out = append(out, m)
		}
	}
	return out
}

type fakePages struct {
	rows   map[string]entities.Page
	nextID uint
}

var _ output.PageRepository = (*fakePages)(nil)

func newFakePages() *fakePages {
	return &fakePages{rows: map[string]entities.Page{}, nextID: 1}
}

func (f *fakePages) Create(_ context.Context, p *entities.Page) error {
	if _, ok := f.rows[p.URL]; ok {
		return errors.New("duplicate page url")
	}
	p.ID = f.nextID
	f.nextID++
	f.rows[p.URL] = *p
	return nil
}

func (f *fakePages) FindByURL(_ context.Context, url string) (*entities.Page, error) {
	p, ok := f.rows[url]
	if !ok {
		return nil, domain.ErrPageNotFound
	}
	return &p, nil
}

func (f *fakePages) URLExists(_ context.Context, url string) (bool, error) {
	_, ok := f.rows[url]
	return ok, nil
}

type fakeRegistrations struct {
	rows       []entities.Registration
	countCalls int
}

var _ output.RegistrationRepository = (*fakeRegistrations)(nil)

func (f *fakeRegistrations) Create(_ context.Context, r *entities.Registration) error {
	r.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, *r)
	return nil
}

func (f *fakeRegistrations) FindByEventIDAndEmail(_ context.Context, eventID uint, email string) (*entities.Registration, error) {
	for _, r := range f.rows {
		if r.EventID == eventID && strings.EqualFold(r.Email, email) {
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRegistrations) CountByEventID(_ context.Context, eventID uint) (int64, error) {
	var n int64
	for _, r := range f.rows {
		if r.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (f *fakeRegistrations) CountForAttendee(_ context.Context, eventID, partnerID uint, email string) (int64, error) {
	f.countCalls++
	var n int64
	for _, r := range f.rows {
		if r.EventID != eventID {
			continue
		}
		byPartner := partnerID != 0 && r.PartnerID != nil && *r.PartnerID == partnerID
		byEmail := email != "" && strings.EqualFold(r.Email, email)
		if byPartner || byEmail {
			n++
		}
	}
	return n, nil
}

type fakeAddresses map[uint]entities.Address

func (f fakeAddresses) FindByID(_ context.Context, id uint) (*entities.Address, error) {
	a, ok := f[id]
	if !ok {
		return nil, domain.ErrAddressNotFound
	}
	return &a, nil
}

type fakeTx struct{ calls int }

func (f *fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

var labels = map[string]string{
	"menu.introduction":      "Introduction",
	"menu.location":          "Location",
	"menu.register":          "Register",
	"registration.confirmed": "registered",
}

type fakeTranslator struct{}

func (fakeTranslator) T(_ string, key string, _ map[string]any) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}

type recordingNotifier struct {
	sent []entities.Notification
	err  error
}

func (r *recordingNotifier) Notify(_ context.Context, n entities.Notification) error {
	r.sent = append(r.sent, n)
	return r.err
}
