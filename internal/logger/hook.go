package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook écrit les entrées de log de manière asynchrone pour ne pas
// bloquer le traitement des requêtes. Les entrées sont mises en buffer et
// écrites vers les writers (fichier, stdout) dans une goroutine dédiée.
type AsyncHook struct {
	writers    []io.Writer
	entries    chan *logrus.Entry
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	bufferSize int
}

// NewAsyncHookWithWriters crée un hook asynchrone avec plusieurs writers.
// bufferSize : taille du buffer d'entrées (1000 par défaut).
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers:    writers,
		entries:    make(chan *logrus.Entry, bufferSize),
		bufferSize: bufferSize,
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels retourne les niveaux traités par ce hook
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire est appelé à chaque entrée de log. L'entrée est poussée dans le
// channel sans bloquer; si le buffer est plein, l'entrée est abandonnée.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook fermé : écriture directe vers les writers (repli)
		data, err := formatEntry(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Buffer plein : l'entrée est abandonnée plutôt que de bloquer
	}

	return nil
}

// processEntries consomme les entrées dans une goroutine dédiée.
// Un recover protège la goroutine : un panic du logger ne doit pas
// faire tomber le serveur.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Pas de logger ici (boucle infinie sinon), stderr direct
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] panic dans la goroutine du logger: %v\n", r)
					debug.PrintStack()
				}
			}()

			// Le FilterHook marque les entrées filtrées avec "_filtered"
			if filtered, ok := entry.Data["_filtered"].(bool); ok && filtered {
				return
			}

			filteredEntry := entry
			if _, ok := entry.Data["_filtered"]; ok {
				filteredEntry = entry.Dup()
				delete(filteredEntry.Data, "_filtered")
			}

			data, err := formatEntry(filteredEntry)
			if err != nil {
				return
			}

			for _, writer := range h.writers {
				if _, err = writer.Write(data); err != nil {
					continue
				}
			}
		}()
	}
}

// formatEntry formate une entrée avec le formatter du logger
func formatEntry(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Close ferme le hook et attend la fin du traitement des entrées
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}

// FilterHook filtre les entrées de log par module (champ "module").
// Si la configuration est vide ou "*", toutes les entrées passent.
type FilterHook struct {
	allowedModules  map[string]bool
	hasModuleFilter bool
	mu              sync.RWMutex
}

// NewFilterHook crée un filter hook depuis la configuration
func NewFilterHook(cfg *LogConfig) *FilterHook {
	hook := &FilterHook{
		allowedModules: parseFilter(cfg.FilterModules),
	}
	hook.hasModuleFilter = len(hook.allowedModules) > 0 && !hook.allowedModules["*"]
	return hook
}

// parseFilter transforme "a,b,c" (ou "*") en map de lookup
func parseFilter(filterStr string) map[string]bool {
	result := make(map[string]bool)

	if filterStr == "" || filterStr == "*" {
		result["*"] = true
		return result
	}

	for _, value := range strings.Split(filterStr, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			result[value] = true
		}
	}
	return result
}

// Levels retourne les niveaux traités par ce hook
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire marque les entrées refusées avec le champ "_filtered"; l'AsyncHook
// en aval les abandonne avant écriture.
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.hasModuleFilter {
		return nil
	}

	module, ok := entry.Data["module"].(string)
	if !ok || module == "" {
		return nil
	}

	if !h.allowedModules[module] {
		entry.Data["_filtered"] = true
	}
	return nil
}
