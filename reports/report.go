// Package reports builds the admin sales exports and dashboard aggregates
// from preloaded orders (User and Items.Product must be joined in).
package reports

import (
	"fmt"
	"strings"
	"time"

	"coffee-shop-api/models"
)

// Summary is the header block of a sales report
type Summary struct {
	TotalOrders  int    `json:"total_orders"`
	TotalRevenue int    `json:"total_revenue"`
	TotalItems   int    `json:"total_items"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// MonthlySales is one bar of the dashboard revenue chart
type MonthlySales struct {
	Month string `json:"month"`
	Sales int    `json:"sales"`
}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// Summarize totals the orders for the report header
func Summarize(orders []models.Order, startDate, endDate string) Summary {
	s := Summary{
		TotalOrders: len(orders),
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if s.StartDate == "" {
		s.StartDate = "Awal"
	}
	if s.EndDate == "" {
		s.EndDate = "Sekarang"
	}
	for _, o := range orders {
		s.TotalRevenue += o.Total
		for _, item := range o.Items {
			s.TotalItems += item.Quantity
		}
	}
	return s
}

// GroupByMonth buckets order totals by calendar month, in chronological
// order of first appearance, using Indonesian month labels.
func GroupByMonth(orders []models.Order) []MonthlySales {
	totals := map[string]int{}
	var order []string
	for i := len(orders) - 1; i >= 0; i-- { // orders arrive newest first
		o := orders[i]
		label := monthNames[o.CreatedAt.Month()-1]
		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}
		totals[label] += o.Total
	}

	out := make([]MonthlySales, 0, len(order))
	for _, label := range order {
		out = append(out, MonthlySales{Month: label, Sales: totals[label]})
	}
	return out
}

// RenderCSV produces the export file: one row per order item, the order
// columns only on an order's first row, and a summary block at the end.
func RenderCSV(orders []models.Order, startDate, endDate string) string {
	var rows []string

	rows = append(rows, strings.Join([]string{
		"Order ID", "Tanggal", "Pelanggan", "Email", "Status",
		"Produk", "Kategori", "Qty", "Harga Satuan", "Subtotal", "Total Order",
	}, ","))

	for _, order := range orders {
		for i, item := range order.Items {
			first := i == 0
			rows = append(rows, strings.Join([]string{
				onFirst(first, fmt.Sprintf("%d", order.ID)),
				onFirst(first, order.CreatedAt.Format("02/01/2006")),
				onFirst(first, escapeCSV(order.User.Name)),
				onFirst(first, order.User.Email),
				onFirst(first, string(order.Status)),
				escapeCSV(item.Product.Name),
				item.Product.Category,
				fmt.Sprintf("%d", item.Quantity),
				fmt.Sprintf("%d", item.Price),
				fmt.Sprintf("%d", item.Price*item.Quantity),
				onFirst(first, fmt.Sprintf("%d", order.Total)),
			}, ","))
		}
	}

	summary := Summarize(orders, startDate, endDate)
	rows = append(rows,
		"",
		"RINGKASAN LAPORAN",
		fmt.Sprintf("Periode,%s - %s", summary.StartDate, summary.EndDate),
		fmt.Sprintf("Total Pesanan,%d", summary.TotalOrders),
		fmt.Sprintf("Total Item Terjual,%d", summary.TotalItems),
		fmt.Sprintf("Total Pendapatan,%d", summary.TotalRevenue),
	)

	return strings.Join(rows, "\n")
}

// Filename names the download after the requested range, or today's date
// when no range was given.
func Filename(startDate, endDate string, now time.Time) string {
	if startDate != "" && endDate != "" {
		return fmt.Sprintf("laporan-penjualan_%s_to_%s.csv", startDate, endDate)
	}
	return fmt.Sprintf("laporan-penjualan_%s.csv", now.Format("2006-01-02"))
}

func onFirst(first bool, value string) string {
	if first {
		return value
	}
	return ""
}

func escapeCSV(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return "\"" + strings.ReplaceAll(value, "\"", "\"\"") + "\""
	}
	return value
}
