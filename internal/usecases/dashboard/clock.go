package dashboard

import (
	"errors"
	"sync"
	"time"
	_ "time/tzdata" // fusos IANA disponíveis mesmo em imagens sem /usr/share/zoneinfo

	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
)

var locations sync.Map

// LoadLocation carrega um fuso IANA, reaproveitando carregamentos anteriores
func LoadLocation(timezone string) (*time.Location, error) {
	if cached, ok := locations.Load(timezone); ok {
		return cached.(*time.Location), nil
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}

	locations.Store(timezone, loc)
	return loc, nil
}

// Sample converte o instante para o fuso informado e retorna hora, minuto e segundo (0-23, 0-59, 0-59).
// Um fuso vazio ou inválido cai para a hora local do sistema, marcada com Fallback.
func Sample(instant time.Time, timezone string) domain.ClockReading {
	var local time.Time
	fallback := false

	loc, err := loadNamedLocation(timezone)
	if err != nil {
		local = instant.Local()
		fallback = true
	} else {
		local = instant.In(loc)
	}

	return domain.ClockReading{
		Hour:     local.Hour(),
		Minute:   local.Minute(),
		Second:   local.Second(),
		Timezone: timezone,
		Fallback: fallback,
	}
}

// loadNamedLocation recusa o nome vazio, que time.LoadLocation interpretaria como UTC
func loadNamedLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return nil, errEmptyTimezone
	}
	return LoadLocation(timezone)
}

var errEmptyTimezone = errors.New("fuso horário vazio")
