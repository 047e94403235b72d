// Package backup copies the uploads directory into dated snapshots once a day
// and prunes snapshots past their retention.
package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const stampLayout = "2006-01-02_15-04-05"

type Scheduler struct {
	Src       string
	Dest      string
	Retention time.Duration
	Hour      int
	Minute    int
	Log       *zap.Logger
}

// Run snapshots Src into Dest every day at Hour:Minute until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	for {
		next := NextRun(time.Now(), s.Hour, s.Minute)
		log.Info("next uploads backup scheduled", zap.Time("at", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		dir, err := Snapshot(s.Src, s.Dest, time.Now())
		if err != nil {
			log.Error("uploads backup failed", zap.Error(err))
		} else {
			log.Info("uploads backed up", zap.String("dir", dir))
		}
		removed, err := Prune(s.Dest, s.Retention, time.Now())
		if err != nil {
			log.Warn("backup pruning failed", zap.Error(err))
		}
		for _, dir := range removed {
			log.Info("old backup removed", zap.String("dir", dir))
		}
	}
}

// NextRun returns the first hour:min strictly after now.
func NextRun(now time.Time, hour, min int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Snapshot copies src into a new timestamped folder under dest.
func Snapshot(src, dest string, now time.Time) (string, error) {
	dir := filepath.Join(dest, now.Format(stampLayout))
	if err := CopyDir(src, dir); err != nil {
		return "", fmt.Errorf("backup %s: %w", src, err)
	}
	return dir, nil
}

// CopyDir recursively copies a folder.
func CopyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())
		if entry.IsDir() {
			err = CopyDir(srcPath, destPath)
		} else {
			err = copyFile(srcPath, destPath)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// Prune removes snapshot folders modified before now minus retention and
// returns the removed paths.
func Prune(dir string, retention time.Duration, now time.Time) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	cutoff := now.Add(-retention)

	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(dir, entry.Name())
			if err := os.RemoveAll(path); err != nil {
				return removed, err
			}
			removed = append(removed, path)
		}
	}
	return removed, nil
}
