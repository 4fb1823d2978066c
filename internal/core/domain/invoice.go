package domain

import "time"

type Tax struct {
	Amount      Money  `json:"amount"`
	Description string `json:"description"`
}

func NewTax(amount Money, description string) Tax {
	return Tax{Amount: amount, Description: description}
}

// RequestItem is one priced line of an invoice request.
type RequestItem struct {
	Product   ProductSnapshot `json:"product"`
	Quantity  int             `json:"quantity"`
	TotalCost Money           `json:"total_cost"`
}

func NewRequestItem(product ProductSnapshot, quantity int, totalCost Money) RequestItem {
	return RequestItem{
		Product:   product,
		Quantity:  quantity,
		TotalCost: totalCost,
	}
}

type InvoiceRequest struct {
	Client ClientData
	items  []RequestItem
}

func NewInvoiceRequest(client ClientData) *InvoiceRequest {
	return &InvoiceRequest{Client: client}
}

func (r *InvoiceRequest) Add(item RequestItem) {
	r.items = append(r.items, item)
}

func (r *InvoiceRequest) Items() []RequestItem {
	items := make([]RequestItem, len(r.items))
	copy(items, r.items)
	return items
}

type InvoiceLine struct {
	Item RequestItem `json:"item"`
	Tax  Tax         `json:"tax"`
}

type Invoice struct {
	ID       ID            `json:"id"`
	Number   string        `json:"number"`
	Client   ClientData    `json:"client"`
	Lines    []InvoiceLine `json:"lines"`
	Net      Money         `json:"net"`
	Tax      Money         `json:"tax"`
	IssuedAt time.Time     `json:"issued_at"`
}

func NewInvoice(number string, client ClientData, issuedAt time.Time) *Invoice {
	return &Invoice{
		Number:   number,
		Client:   client,
		Lines:    []InvoiceLine{},
		IssuedAt: issuedAt,
	}
}

// AddLine appends a taxed line and keeps the net and tax totals in step.
func (i *Invoice) AddLine(item RequestItem, tax Tax) {
	i.Lines = append(i.Lines, InvoiceLine{Item: item, Tax: tax})
	i.Net = i.Net.Add(item.TotalCost)
	i.Tax = i.Tax.Add(tax.Amount)
}

func (i *Invoice) Gross() Money {
	return i.Net.Add(i.Tax)
}

type InvoiceIssuedEvent struct {
	InvoiceID ID        `json:"invoice_id"`
	Number    string    `json:"number"`
	ClientID  ID        `json:"client_id"`
	Lines     int       `json:"lines"`
	Net       Money     `json:"net"`
	Tax       Money     `json:"tax"`
	Gross     Money     `json:"gross"`
	IssuedAt  time.Time `json:"issued_at"`
}

func (e *InvoiceIssuedEvent) GetName() string {
	return "invoice.issued"
}

func (e *InvoiceIssuedEvent) GetEntityName() string {
	return "invoice"
}

func NewInvoiceIssuedEvent(invoice *Invoice) *InvoiceIssuedEvent {
	return &InvoiceIssuedEvent{
		InvoiceID: invoice.ID,
		Number:    invoice.Number,
		ClientID:  invoice.Client.ID,
		Lines:     len(invoice.Lines),
		Net:       invoice.Net,
		Tax:       invoice.Tax,
		Gross:     invoice.Gross(),
		IssuedAt:  invoice.IssuedAt,
	}
}
