package pricing

import "errors"

// User-facing validation failures, one per rejection reason. The storefront
// shows these verbatim.
var (
	ErrCouponNotFound   = errors.New("Kode kupon tidak ditemukan")
	ErrCouponInactive   = errors.New("Kupon sudah tidak aktif")
	ErrCouponNotStarted = errors.New("Kupon belum berlaku")
	ErrCouponExpired    = errors.New("Kupon sudah kadaluarsa")
	ErrCouponExhausted  = errors.New("Kupon sudah mencapai batas penggunaan")
)

// MinPurchaseError carries the threshold so the message can name it
type MinPurchaseError struct {
	Required int
}

func (e *MinPurchaseError) Error() string {
	return "Minimal pembelian " + FormatRupiah(e.Required) + " untuk kupon ini"
}
