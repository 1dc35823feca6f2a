package uploads

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Janitor periodically removes *.tmp files a crashed request may have left in
// the content directory. Finished uploads are never touched.
type Janitor struct {
	dir    string
	maxAge time.Duration
	cron   *cron.Cron
}

func NewJanitor(dir string, maxAge time.Duration) *Janitor {
	if maxAge == 0 {
		maxAge = time.Hour
	}
	return &Janitor{dir: dir, maxAge: maxAge, cron: cron.New()}
}

func (j *Janitor) Start() error {
	if _, err := j.cron.AddFunc("@every 1h", j.Sweep); err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

func (j *Janitor) Stop() {
	j.cron.Stop()
}

// Sweep deletes temp files older than maxAge.
func (j *Janitor) Sweep() {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[janitor] read %s: %v", j.dir, err)
		}
		return
	}

	cutoff := time.Now().Add(-j.maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".tmp") {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(j.dir, e.Name())); err == nil {
			removed++
		}
	}

	if removed > 0 {
		log.Printf("[janitor] removed %d stale temp file(s) from %s", removed, j.dir)
	}
}
