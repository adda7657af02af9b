package domain

// DefaultTimezone é o fuso usado quando a empresa não configura um fuso válido
const DefaultTimezone = "Africa/Maputo"

// Shift representa um turno configurado pela empresa, ainda em formato textual
type Shift struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Label     string `json:"label"`
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
	Position  int    `json:"position"`
}

// DisplayLabel retorna o rótulo de exibição do turno, ou o nome quando não houver rótulo
func (s Shift) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Name
}

// ScheduledShift é um turno cujo intervalo foi interpretado com sucesso
type ScheduledShift struct {
	Shift    Shift    `json:"shift"`
	Interval Interval `json:"interval"`
}

// CompanyInfo contém a configuração da farmácia fornecida pelo backend
type CompanyInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Timezone    string  `json:"timezone"`
	OpeningTime *string `json:"opening_time"`
	ClosingTime *string `json:"closing_time"`
	Shifts      []Shift `json:"shifts"`
}

// BusinessProfile é a configuração da empresa já validada e normalizada
type BusinessProfile struct {
	CompanyID   string           `json:"company_id"`
	CompanyName string           `json:"company_name"`
	Timezone    string           `json:"timezone"`
	Opening     *Interval        `json:"opening"`
	Shifts      []ScheduledShift `json:"shifts"`
	Issues      []string         `json:"issues,omitempty"`
}
