package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/driverp/bike-marketplace/internal/core/domain"
)

// ContentRepository implements ports.ContentRepository. Singleton pages
// keep one editable row; the oldest row wins when more than one exists.
type ContentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) GetSiteBrand(ctx context.Context) (*domain.SiteBrand, error) {
	query := `SELECT left_text, right_text, left_color, right_color, shadow, created_at
		FROM site_brand ORDER BY created_at ASC LIMIT 1`

	var brand domain.SiteBrand
	err := r.db.QueryRowContext(ctx, query).Scan(
		&brand.LeftText, &brand.RightText, &brand.LeftColor, &brand.RightColor,
		&brand.Shadow, &brand.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *ContentRepository) ListNavItems(ctx context.Context) ([]*domain.NavItem, error) {
	query := `SELECT title, url, sort_order, is_external FROM nav_items ORDER BY sort_order ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*domain.NavItem{}
	for rows.Next() {
		var item domain.NavItem
		if err := rows.Scan(&item.Title, &item.URL, &item.Order, &item.IsExternal); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *ContentRepository) GetHomePage(ctx context.Context) (*domain.HomePage, error) {
	query := `SELECT hero_heading, hero_highlight, hero_paragraph, hero_button_text,
		hero_button_url, carousel_interval
		FROM home_page ORDER BY created_at ASC LIMIT 1`

	var page domain.HomePage
	err := r.db.QueryRowContext(ctx, query).Scan(
		&page.HeroHeading, &page.HeroHighlight, &page.HeroParagraph,
		&page.HeroButtonText, &page.HeroButtonURL, &page.CarouselInterval,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

func (r *ContentRepository) ListHomeFeatures(ctx context.Context) ([]*domain.HomeFeature, error) {
	query := `SELECT title, paragraph, button_text, button_url, sort_order, is_active
		FROM home_features WHERE is_active = TRUE ORDER BY sort_order ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	features := []*domain.HomeFeature{}
	for rows.Next() {
		var f domain.HomeFeature
		if err := rows.Scan(&f.Title, &f.Paragraph, &f.ButtonText, &f.ButtonURL, &f.Order, &f.IsActive); err != nil {
			return nil, err
		}
		features = append(features, &f)
	}
	return features, rows.Err()
}

func (r *ContentRepository) ListSupportItems(ctx context.Context) ([]*domain.SupportItem, error) {
	query := `SELECT title, text, sort_order, direction, is_active
		FROM support_items WHERE is_active = TRUE ORDER BY sort_order ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*domain.SupportItem{}
	for rows.Next() {
		var item domain.SupportItem
		if err := rows.Scan(&item.Title, &item.Text, &item.Order, &item.Direction, &item.IsActive); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *ContentRepository) ListFAQs(ctx context.Context) ([]*domain.FAQ, error) {
	query := `SELECT question, answer FROM faqs ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs := []*domain.FAQ{}
	for rows.Next() {
		var faq domain.FAQ
		if err := rows.Scan(&faq.Question, &faq.Answer); err != nil {
			return nil, err
		}
		faqs = append(faqs, &faq)
	}
	return faqs, rows.Err()
}

func (r *ContentRepository) GetAboutPage(ctx context.Context) (*domain.AboutPage, error) {
	query := `SELECT title, intro_heading, intro_paragraph, highlight_text, mission_title,
		mission_text, mission_overlay_opacity, approach_heading, approach_paragraph
		FROM about_page ORDER BY created_at ASC LIMIT 1`

	var page domain.AboutPage
	err := r.db.QueryRowContext(ctx, query).Scan(
		&page.Title, &page.IntroHeading, &page.IntroParagraph, &page.HighlightText,
		&page.MissionTitle, &page.MissionText, &page.MissionOpacity,
		&page.ApproachHeading, &page.ApproachParagraph,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

func (r *ContentRepository) GetSellBanner(ctx context.Context) (*domain.Banner, error) {
	query := `SELECT title_line_1, title_line_2, title_line_3, subtitle, accent_color
		FROM sell_banner ORDER BY created_at ASC LIMIT 1`

	var banner domain.Banner
	err := r.db.QueryRowContext(ctx, query).Scan(
		&banner.TitleLine1, &banner.TitleLine2, &banner.TitleLine3,
		&banner.Subtitle, &banner.AccentColor,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &banner, nil
}
