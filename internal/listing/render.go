package listing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"auction-web/internal/models"
	"auction-web/utils"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Panel is the chrome around one list: the container class and the texts of
// its empty state.
type Panel struct {
	Class    string
	Icon     string
	Title    string
	Hint     string
	LinkURL  string
	LinkText string
}

var (
	FavoritesPanel = Panel{
		Class:    "no-favorites",
		Icon:     "⭐",
		Title:    "즐겨찾기한 상품이 없습니다",
		Hint:     "관심 있는 상품을 즐겨찾기에 추가해보세요!",
		LinkURL:  "/auctionList",
		LinkText: "경매 둘러보기",
	}
	AlertsPanel = Panel{
		Class: "no-alerts",
		Icon:  "🔔",
		Title: "가격 알림 내역이 없습니다",
		Hint:  "즐겨찾기한 물건의 가격이 변동되면 알림을 받을 수 있습니다.",
	}
)

type favoriteRow struct {
	Number     int
	Key        int64
	CltrNo     string
	Address    string
	GoodsNm    string
	Appraisal  string
	MinPrice   string
	Percent    string
	Date       string
	UscbCnt    int
	Badge      string
	BadgeClass string
}

type alertRow struct {
	Number    int
	ItemName  string
	Previous  string
	New       string
	Class     string
	Icon      string
	Direction string
	Sent      bool
	Date      string
}

// RenderFavorites renders the favorites container for r
func RenderFavorites(r Result[models.Favorite]) (string, error) {
	if r.State != StateRendered {
		return renderState(FavoritesPanel, r.State, r.Message)
	}

	rows := make([]favoriteRow, 0, len(r.Items))
	for i, f := range r.Items {
		row := favoriteRow{
			Number:    i + 1,
			Key:       f.Key(),
			CltrNo:    f.CltrNo,
			Address:   orDefault(f.Address, f.ItemName),
			GoodsNm:   f.GoodsNm,
			Appraisal: orDefault(f.AppraisalPriceFormatted, "-"),
			MinPrice:  orDefault(f.MinPriceFormatted, "-"),
			Percent:   f.PricePercent,
			Date:      orDefault(f.FormattedDate, "-"),
			UscbCnt:   f.UscbCnt,
		}
		switch {
		case f.UscbCnt == 0:
			row.Badge, row.BadgeClass = "신건", "status-badge-table new"
		case f.UscbCnt <= 2:
			row.Badge, row.BadgeClass = fmt.Sprintf("유찰 %d회", f.UscbCnt), "status-badge-table failed"
		default:
			row.Badge, row.BadgeClass = fmt.Sprintf("유찰 %d회", f.UscbCnt), "status-badge-table"
		}
		rows = append(rows, row)
	}
	return execute("favorites", rows)
}

// RenderAlerts renders the price alert container for r. Rows are numbered
// newest first.
func RenderAlerts(r Result[models.PriceAlert]) (string, error) {
	if r.State != StateRendered {
		return renderState(AlertsPanel, r.State, r.Message)
	}

	rows := make([]alertRow, 0, len(r.Items))
	for i, a := range r.Items {
		row := alertRow{
			Number:   len(r.Items) - i,
			ItemName: orDefault(a.ItemPlnmNo, "알 수 없음"),
			Previous: utils.FormatWon(a.PreviousPrice),
			New:      utils.FormatWon(a.NewPrice),
			Sent:     a.AlertSent,
			Date:     formatSentDate(a.SentDate),
		}
		switch diff := a.NewPrice - a.PreviousPrice; {
		case diff < 0:
			row.Class, row.Icon, row.Direction = "price-down", "↓", "하락"
		case diff > 0:
			row.Class, row.Icon, row.Direction = "price-up", "↑", "상승"
		default:
			row.Class, row.Icon, row.Direction = "price-same", "→", "동일"
		}
		rows = append(rows, row)
	}
	return execute("alerts", rows)
}

func renderState(p Panel, state State, message string) (string, error) {
	switch state {
	case StateEmpty:
		return execute("empty", p)
	case StateLoginRequired:
		return execute("login", p)
	default:
		p.Title = message
		return execute("error", p)
	}
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("listing: render %s: %w", name, err)
	}
	return buf.String(), nil
}

var sentDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

// formatSentDate shows "2024. 01. 15. 15:30"; unknown layouts pass through
func formatSentDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	for _, layout := range sentDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006. 01. 02. 15:04")
		}
	}
	return s
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
