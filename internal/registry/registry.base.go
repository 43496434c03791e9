// Package registry fournit une implémentation générique et thread-safe du
// pattern registry. Il sert à gérer les instances partagées de l'application
// (services, writers d'export) via un type paramétré réutilisable.
package registry

import (
	"fmt"
	"sync"

	"admin_ga/internal/common"
)

// Registry est un registre générique protégé par un sync.RWMutex.
// Le paramètre de type T permet de gérer n'importe quel type d'objet.
//
// Exemple :
//
//	reg := NewRegistry[string]()
//	reg.Register("cle", "valeur")
//	if v, ok := reg.Get("cle"); ok {
//	    fmt.Println(v)
//	}
type Registry[T any] struct {
	items map[string]T // Items indexés par clé
	mu    sync.RWMutex // Mutex garantissant le thread-safety
}

// NewRegistry crée et retourne un registre vide.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register enregistre un item dans le registre.
// Si un item du même nom existe déjà, il est écrasé.
//
// Returns:
//   - isNew : true si l'item est nouveau, false s'il écrase un ancien
//   - err : erreur si le nom est vide
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("le nom ne peut pas être vide: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get retourne l'item du nom donné et un booléen d'existence.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate retourne l'item du nom donné, en le créant via creator s'il
// n'existe pas encore. L'opération est atomique vis-à-vis du registre.
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("le nom ne peut pas être vide: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.items[name]; exists {
		return existing, nil
	}

	newItem, err := creator()
	if err != nil {
		return item, fmt.Errorf("échec de création de l'item: %w", err)
	}

	r.items[name] = newItem
	return newItem, nil
}

// Names retourne la liste des noms enregistrés (ordre non garanti).
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Clear supprime un item du registre. Si une fonction cleanup est fournie,
// elle est appelée avant la suppression pour libérer les ressources.
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	if name == "" {
		return false, fmt.Errorf("le nom ne peut pas être vide: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("échec du nettoyage de l'item %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}

// ClearAll supprime tous les items du registre et retourne leur nombre.
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	if count == 0 {
		return 0, nil
	}

	if cleanup != nil {
		var errs []error
		for name, item := range r.items {
			if err := cleanup(item); err != nil {
				errs = append(errs, fmt.Errorf("échec du nettoyage de %s: %w", name, err))
			}
		}
		if len(errs) > 0 {
			return 0, fmt.Errorf("erreurs lors du nettoyage: %v", errs)
		}
	}

	r.items = make(map[string]T)
	return count, nil
}
