// Package pricing holds the order-total arithmetic and coupon validation
// rules. Everything here is pure: the same inputs always produce the same
// verdict, and nothing is written to the database.
package pricing

import (
	"fmt"
	"time"

	"coffee-shop-api/models"
)

// Line is a product quantity priced at checkout time
type Line struct {
	ProductID uint
	Quantity  int
	UnitPrice int
}

// Subtotal sums quantity times unit price over all lines
func Subtotal(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity * l.UnitPrice
	}
	return total
}

// DiscountAmount computes the Rupiah value of a percent discount,
// rounded down.
func DiscountAmount(subtotal, percent int) int {
	return subtotal * percent / 100
}

// Total is the frozen order total: subtotal plus the flat service fee minus
// any coupon discount. Never negative.
func Total(subtotal, serviceFee, discount int) int {
	t := subtotal + serviceFee - discount
	if t < 0 {
		return 0
	}
	return t
}

// CouponResult is the verdict for a successfully validated coupon
type CouponResult struct {
	CouponID       uint   `json:"id"`
	Code           string `json:"code"`
	Discount       int    `json:"discount"`
	DiscountAmount int    `json:"discount_amount"`
	MinPurchase    *int   `json:"min_purchase"`
}

// ValidateCoupon runs the sequential coupon checks, short-circuiting on the
// first failure. Checks run in a fixed order: active, validity window, usage
// cap, minimum purchase. The caller is responsible for looking the coupon up
// by its uppercased code (a missing code is ErrCouponNotFound territory).
func ValidateCoupon(coupon *models.Coupon, subtotal int, now time.Time) (*CouponResult, error) {
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	if !coupon.IsActive {
		return nil, ErrCouponInactive
	}
	if now.Before(coupon.ValidFrom) {
		return nil, ErrCouponNotStarted
	}
	if now.After(coupon.ValidUntil) {
		return nil, ErrCouponExpired
	}
	if coupon.MaxUses != nil && coupon.UsedCount >= *coupon.MaxUses {
		return nil, ErrCouponExhausted
	}
	if coupon.MinPurchase != nil && subtotal < *coupon.MinPurchase {
		return nil, &MinPurchaseError{Required: *coupon.MinPurchase}
	}

	return &CouponResult{
		CouponID:       coupon.ID,
		Code:           coupon.Code,
		Discount:       coupon.Discount,
		DiscountAmount: DiscountAmount(subtotal, coupon.Discount),
		MinPurchase:    coupon.MinPurchase,
	}, nil
}

// FormatRupiah renders an amount the way the storefront shows prices,
// with dot thousand separators (60000 -> "Rp 60.000").
func FormatRupiah(amount int) string {
	s := fmt.Sprintf("%d", amount)
	out := ""
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += "."
		}
		out += string(d)
	}
	return "Rp " + out
}
