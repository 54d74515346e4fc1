package view

// StorePublic is what the storefront page sees: branding and contact,
// never payment or staff settings.
type StorePublic struct {
	Handle      string `json:"handle"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`
	Currency    string `json:"currency"`
	Country     string `json:"country"`
	Instagram   string `json:"instagram,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
	Whatsapp    string `json:"whatsapp,omitempty"`
}

// StoreSettings is the owner's full view in dashboard settings.
type StoreSettings struct {
	ID           string `json:"id"`
	Handle       string `json:"handle"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	LogoURL      string `json:"logo_url"`
	CoverURL     string `json:"cover_url"`
	Currency     string `json:"currency"`
	Country      string `json:"country"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Instagram    string `json:"instagram"`
	Twitter      string `json:"twitter"`

	PaymentCOD    bool   `json:"payment_cod"`
	PaymentBank   bool   `json:"payment_bank"`
	PaymentOnline bool   `json:"payment_online"`
	BankName      string `json:"bank_name"`
	BankIBAN      string `json:"bank_iban"`

	ShippingEnabled   bool   `json:"shipping_enabled"`
	ShippingFee       string `json:"shipping_fee"`
	ShippingFeeCents  int64  `json:"shipping_fee_cents"`
	FreeShippingAbove int64  `json:"free_shipping_above_cents"`

	WhatsappEnabled bool   `json:"whatsapp_enabled"`
	WhatsappPhone   string `json:"whatsapp_phone"`
}
