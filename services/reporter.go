package services

import (
	"fmt"
	"strings"
	"sync"
)

// RunStats tallies task outcomes across one crawl run.
type RunStats struct {
	mu sync.Mutex

	PagesCrawled   int
	Candidates     int
	SkippedKnown   int
	Stored         int
	AlreadyPresent int
	Blocked        int
	Failed         int
}

func (s *RunStats) AddPage(candidates, skipped int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PagesCrawled++
	s.Candidates += candidates
	s.SkippedKnown += skipped
}

func (s *RunStats) AddStored() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Stored++
}

func (s *RunStats) AddAlreadyPresent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AlreadyPresent++
}

func (s *RunStats) AddBlocked() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Blocked++
}

func (s *RunStats) AddFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Failed++
}

// PrintRunReport formats and prints the crawl summary to the terminal.
func PrintRunReport(stats *RunStats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	border := strings.Repeat("═", 45)
	thin := strings.Repeat("─", 45)

	fmt.Printf("\n╔%s╗\n", border)
	fmt.Printf("║%s║\n", center("OLX CRAWL SUMMARY", 45))
	fmt.Printf("╚%s╝\n", border)

	fmt.Printf("\n LISTING PAGES\n%s\n", thin)
	fmt.Printf("  Pages Crawled       : %d\n", stats.PagesCrawled)
	fmt.Printf("  Candidate Ads       : %d\n", stats.Candidates)
	fmt.Printf("  Skipped (known)     : %d\n", stats.SkippedKnown)

	fmt.Printf("\n DETAIL TASKS\n%s\n", thin)
	fmt.Printf("  Stored              : %d\n", stats.Stored)
	fmt.Printf("  Already Present     : %d\n", stats.AlreadyPresent)
	fmt.Printf("  Blocked (anti-bot)  : %d\n", stats.Blocked)
	fmt.Printf("  Failed              : %d\n", stats.Failed)

	fmt.Printf("\n%s\n\n", border)
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}
