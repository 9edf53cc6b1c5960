package services

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Counter is anything that can report a collection length.
type Counter interface {
	Count() (int, error)
}

// MemoryUsage mirrors the process memory numbers the admin dashboard shows.
type MemoryUsage struct {
	RSS uint64 `json:"rss"`
	VMS uint64 `json:"vms"`
}

// Stats is the admin dashboard snapshot. Posts and orders come from the
// collections; uptime and memory from the hosting process.
type Stats struct {
	Posts  int         `json:"posts"`
	Orders int         `json:"orders"`
	Uptime float64     `json:"uptime"` // seconds
	Memory MemoryUsage `json:"memory"`
}

// StatsService aggregates collection sizes and process runtime numbers.
type StatsService struct {
	posts   Counter
	orders  Counter
	started time.Time
}

func NewStatsService(posts, orders Counter) *StatsService {
	return &StatsService{
		posts:   posts,
		orders:  orders,
		started: time.Now(),
	}
}

// Snapshot collects the current stats. Process memory is best-effort: if
// the platform query fails the counts are still returned with zero memory.
func (s *StatsService) Snapshot() (Stats, error) {
	posts, err := s.posts.Count()
	if err != nil {
		return Stats{}, err
	}
	orders, err := s.orders.Count()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Posts:  posts,
		Orders: orders,
		Uptime: time.Since(s.started).Seconds(),
	}

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
			stats.Memory = MemoryUsage{RSS: mem.RSS, VMS: mem.VMS}
		}
	}

	return stats, nil
}
