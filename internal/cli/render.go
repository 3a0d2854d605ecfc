package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fjod/go_cart/cart-cli/internal/domain"
	"github.com/shopspring/decimal"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func RenderProducts(w io.Writer, products []domain.Product) {
	tw := newTable(w)
	fmt.Fprintln(tw, "Product ID\tName\tPrice\t")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", p.ID, p.Name, money(p.Price))
	}
	tw.Flush()
}

type lineRow struct {
	product  domain.Product
	quantity int
}

func renderLines(w io.Writer, rows []lineRow) {
	tw := newTable(w)
	fmt.Fprintln(tw, "Product ID\tName\tPrice\tQuantity\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t\n", r.product.ID, r.product.Name, money(r.product.Price), r.quantity)
	}
	tw.Flush()
}

func RenderCart(w io.Writer, items []domain.CartItem) {
	rows := make([]lineRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, lineRow{product: it.Product, quantity: it.Quantity})
	}
	renderLines(w, rows)
}

func RenderDetails(w io.Writer, details []domain.OrderDetail) {
	rows := make([]lineRow, 0, len(details))
	for _, d := range details {
		rows = append(rows, lineRow{product: d.Product, quantity: d.Quantity})
	}
	renderLines(w, rows)
}

func RenderOrder(w io.Writer, o domain.Order) {
	fmt.Fprintf(w, "Order ID: %d\n", o.ID)
	fmt.Fprintf(w, "Total Amount: %s\n", money(o.TotalAmount))
	fmt.Fprintln(w, "Order Details:")
	RenderDetails(w, o.Details)
	fmt.Fprintln(w)
}
