package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
	"eventsite/internal/ports/output"
	"eventsite/pkg/slug"
)

// MenuEntriesFunc returns the child entries of an event's dedicated menu,
// in display order.
type MenuEntriesFunc func(t output.T, locale string, event *entities.Event) []entities.MenuEntry

// DefaultMenuEntries returns Introduction, Location and Register.
func DefaultMenuEntries(t output.T, locale string, event *entities.Event) []entities.MenuEntry {
	return []entities.MenuEntry{
		{Name: t.T(locale, "menu.introduction", nil), Template: domain.TemplateIntro},
		{Name: t.T(locale, "menu.location", nil), Template: domain.TemplateLocation},
		{Name: t.T(locale, "menu.register", nil), URL: RegisterURL(event)},
	}
}

// MenuSynchronizer keeps an event's dedicated menu tree in line with its
// WebsiteMenu flag.
type MenuSynchronizer struct {
	events     output.EventRepository
	menus      output.MenuRepository
	pages      output.PageRepository
	translator output.T
	entries    MenuEntriesFunc
	log        zerolog.Logger
}

func NewMenuSynchronizer(
	events output.EventRepository,
	menus output.MenuRepository,
	pages output.PageRepository,
	translator output.T,
	log zerolog.Logger,
) *MenuSynchronizer {
	return &MenuSynchronizer{
		events:     events,
		menus:      menus,
		pages:      pages,
		translator: translator,
		entries:    DefaultMenuEntries,
		log:        log,
	}
}

// Sync deletes the menu tree when the flag is off, and otherwise ensures the
// root exists and recreates its entries with sequences 0..n-1.
func (m *MenuSynchronizer) Sync(ctx context.Context, locale string, event *entities.Event) error {
	if !event.WebsiteMenu {
		if event.MenuID == nil {
			return nil
		}
		rootID := *event.MenuID
		if err := m.menus.Delete(ctx, rootID); err != nil {
			return fmt.Errorf("delete menu %d: %w", rootID, err)
		}
		if err := m.events.SetMenuID(ctx, event.ID, nil); err != nil {
			return err
		}
		event.MenuID = nil
		m.log.Info().Uint("event_id", event.ID).Uint("menu_id", rootID).Msg("🗑️ event menu removed")
		return nil
	}

	if event.MenuID == nil {
		root := &entities.Menu{Name: event.Name}
		if err := m.menus.Create(ctx, root); err != nil {
			return fmt.Errorf("create root menu: %w", err)
		}
		rootID := root.ID
		if err := m.events.SetMenuID(ctx, event.ID, &rootID); err != nil {
			return err
		}
		event.MenuID = &rootID
	} else if err := m.menus.DeleteChildren(ctx, *event.MenuID); err != nil {
		return fmt.Errorf("reset menu entries: %w", err)
	}

	for sequence, entry := range m.entries(m.translator, locale, event) {
		if _, err := m.createMenu(ctx, event, sequence, entry); err != nil {
			return err
		}
	}
	m.log.Info().Uint("event_id", event.ID).Uint("menu_id", *event.MenuID).Msg("✅ event menu synchronized")
	return nil
}

func (m *MenuSynchronizer) createMenu(ctx context.Context, event *entities.Event, sequence int, entry entities.MenuEntry) (*entities.Menu, error) {
	url := entry.URL
	if url == "" {
		page, err := m.newPage(ctx, event, entry.Name+" "+event.Name, entry.Template)
		if err != nil {
			return nil, err
		}
		url = "/event/" + slug.Slug(event.Name, event.ID) + "/page/" + strings.TrimPrefix(page.URL, "/")
	}
	parentID := *event.MenuID
	menu := &entities.Menu{
		Name:     entry.Name,
		URL:      url,
		ParentID: &parentID,
		Sequence: sequence,
	}
	if err := m.menus.Create(ctx, menu); err != nil {
		return nil, fmt.Errorf("create menu %q: %w", entry.Name, err)
	}
	return menu, nil
}

// newPage creates a page of event rendered from template under a path
// derived from name, made unique with a numeric suffix.
func (m *MenuSynchronizer) newPage(ctx context.Context, event *entities.Event, name, template string) (*entities.Page, error) {
	base := "/" + slug.Slugify(name)
	if base == "/" {
		base = "/page"
	}
	url := base
	for i := 1; ; i++ {
		exists, err := m.pages.URLExists(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("check page url: %w", err)
		}
		if !exists {
			break
		}
		url = fmt.Sprintf("%s-%d", base, i)
	}
	eventID := event.ID
	page := &entities.Page{EventID: &eventID, Name: name, URL: url, Template: template}
	if err := m.pages.Create(ctx, page); err != nil {
		return nil, fmt.Errorf("create page %q: %w", url, err)
	}
	return page, nil
}
