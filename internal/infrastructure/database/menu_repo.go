package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
	"eventsite/internal/ports/output"
)

var (
	_ output.MenuRepository = (*MenuRepository)(nil)
	_ output.PageRepository = (*PageRepository)(nil)
)

// MenuRepository relies on the parent_id ON DELETE CASCADE constraint to
// remove whole trees.
type MenuRepository struct {
	db DBTX
}

func NewMenuRepository(db DBTX) *MenuRepository {
	return &MenuRepository{db: db}
}

func scanMenu(row pgx.Row) (*entities.Menu, error) {
	var (
		m        entities.Menu
		id       int64
		parentID pgtype.Int8
		sequence int32
	)
	if err := row.Scan(&id, &m.Name, &m.URL, &parentID, &sequence); err != nil {
		return nil, err
	}
	m.ID = uint(id)
	m.ParentID = int8ToID(parentID)
	m.Sequence = int(sequence)
	return &m, nil
}

func (r *MenuRepository) Create(ctx context.Context, menu *entities.Menu) error {
	var id int64
	err := conn(ctx, r.db).QueryRow(ctx, `
		INSERT INTO website_menus (name, url, parent_id, sequence) VALUES ($1, $2, $3, $4) RETURNING id`,
		menu.Name, menu.URL, idToInt8(menu.ParentID), int32(menu.Sequence),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("create menu: %w", err)
	}
	menu.ID = uint(id)
	return nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id uint) (*entities.Menu, error) {
	row := conn(ctx, r.db).QueryRow(ctx, `SELECT id, name, url, parent_id, sequence FROM website_menus WHERE id = $1`, int64(id))
	m, err := scanMenu(row)
	if err != nil {
		return nil, notFound(err, domain.ErrMenuNotFound)
	}
	return m, nil
}

func (r *MenuRepository) FindChildren(ctx context.Context, parentID uint) ([]entities.Menu, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `
		SELECT id, name, url, parent_id, sequence FROM website_menus
		WHERE parent_id = $1 ORDER BY sequence, id`, int64(parentID))
	if err != nil {
		return nil, fmt.Errorf("find child menus: %w", err)
	}
	defer rows.Close()
	var out []entities.Menu
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *MenuRepository) Delete(ctx context.Context, id uint) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM website_menus WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

func (r *MenuRepository) DeleteChildren(ctx context.Context, parentID uint) error {
	if _, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM website_menus WHERE parent_id = $1`, int64(parentID)); err != nil {
		return fmt.Errorf("delete child menus: %w", err)
	}
	return nil
}

type PageRepository struct {
	db DBTX
}

func NewPageRepository(db DBTX) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) Create(ctx context.Context, page *entities.Page) error {
	var id int64
	err := conn(ctx, r.db).QueryRow(ctx, `
		INSERT INTO website_pages (event_id, name, url, template) VALUES ($1, $2, $3, $4) RETURNING id`,
		idToInt8(page.EventID), page.Name, page.URL, page.Template,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	page.ID = uint(id)
	return nil
}

func (r *PageRepository) FindByURL(ctx context.Context, url string) (*entities.Page, error) {
	var (
		p       entities.Page
		id      int64
		eventID pgtype.Int8
	)
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT id, event_id, name, url, template FROM website_pages WHERE url = $1`, url).
		Scan(&id, &eventID, &p.Name, &p.URL, &p.Template)
	if err != nil {
		return nil, notFound(err, domain.ErrPageNotFound)
	}
	p.ID = uint(id)
	p.EventID = int8ToID(eventID)
	return &p, nil
}

func (r *PageRepository) URLExists(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM website_pages WHERE url = $1)`, url).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check page url: %w", err)
	}
	return exists, nil
}
