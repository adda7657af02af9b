package dashboard

import (
	"sync"
	"time"

	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
)

// Snapshot é o conjunto de entradas somente leitura usado em um recálculo.
// Depois de publicado, nenhum campo é alterado.
type Snapshot struct {
	Profile  *domain.BusinessProfile
	Sales    []*domain.Sale
	Products []*domain.Product
	Version  int64
	LoadedAt time.Time
}

// SnapshotStore guarda o último snapshot de dados e o último status calculado
type SnapshotStore struct {
	mu       sync.RWMutex
	snapshot *Snapshot
	status   *domain.BusinessStatus
	version  int64
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Publish substitui o snapshot atual por um novo, com versão incrementada
func (s *SnapshotStore) Publish(profile *domain.BusinessProfile, sales []*domain.Sale, products []*domain.Product, loadedAt time.Time) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++
	s.snapshot = &Snapshot{
		Profile:  profile,
		Sales:    sales,
		Products: products,
		Version:  s.version,
		LoadedAt: loadedAt,
	}

	return s.snapshot
}

// Current retorna o snapshot atual, ou nil antes da primeira carga
func (s *SnapshotStore) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// SetStatus registra o último status e retorna o anterior (nil na primeira vez)
func (s *SnapshotStore) SetStatus(status domain.BusinessStatus) *domain.BusinessStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.status
	s.status = &status
	return previous
}

// LastStatus retorna o último status publicado pelo ticker
func (s *SnapshotStore) LastStatus() *domain.BusinessStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status == nil {
		return nil
	}
	status := *s.status
	return &status
}
