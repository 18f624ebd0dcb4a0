package request

type CheckInRequest struct {
	QRCode string `json:"qr_code" binding:"required,len=32"`
}
