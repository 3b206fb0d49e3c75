package domain

// ProviderRecord é o registro de empresa vindo do diretório externo (upstream).
// Um provider é considerado ativo a menos que Active seja explicitamente false.
type ProviderRecord struct {
	ID          string   `json:"id" yaml:"id"`
	CompanyName string   `json:"company_name" yaml:"company_name"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Domain      string   `json:"domain,omitempty" yaml:"domain"`
	Category    string   `json:"category,omitempty" yaml:"category"`
	Website     string   `json:"website,omitempty" yaml:"website"`
	Logo        string   `json:"logo,omitempty" yaml:"logo"`
	Address     string   `json:"address,omitempty" yaml:"address"`
	Contacts    Contacts `json:"contacts" yaml:"contacts"`
	Active      *bool    `json:"active,omitempty" yaml:"active"`
}

func (p *ProviderRecord) IsActive() bool {
	return p.Active == nil || *p.Active
}

type SyncProvidersResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}
