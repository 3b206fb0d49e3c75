package domain

type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email"`
	Phone string `json:"phone,omitempty" yaml:"phone"`
}

// Contacts agrupa as pessoas de contato de uma empresa (CEO, vendas, marketing e geral)
type Contacts struct {
	CEO       *Contact `json:"ceo,omitempty" yaml:"ceo"`
	Sales     *Contact `json:"sales,omitempty" yaml:"sales"`
	Marketing *Contact `json:"marketing,omitempty" yaml:"marketing"`
	General   *Contact `json:"general,omitempty" yaml:"general"`
}
