package model

// Cartridge is a physical scent-emitting unit. Cartridges are reference
// data: the service reads them but never creates or mutates them.
type Cartridge struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Code  string `json:"code,omitempty"`
	Class string `json:"class,omitempty"`
}
