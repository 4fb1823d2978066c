package domain

import "time"

// ClientData is the client identity copied into reservations and invoices.
type ClientData struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

func NewClientData(id ID, name string) ClientData {
	return ClientData{ID: id, Name: name}
}

type Client struct {
	ID        ID
	Name      string
	CreatedAt time.Time
}

func NewClient(name string) *Client {
	return &Client{
		Name:      name,
		CreatedAt: time.Now(),
	}
}

func (c *Client) Snapshot() ClientData {
	return NewClientData(c.ID, c.Name)
}

// SystemUser is the authenticated actor of the current request.
type SystemUser struct {
	ClientID ID
}
