package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Engagement represents the engagement payload
type Engagement struct {
	UserID string `json:"userId"`
	Type   string `json:"type"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	StatusCode   int
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	Credited          int // 201: engagement recorded and rewarded
	QuotaDenied       int // 429: daily quota or cap exhausted
	Duplicates        int // 409: (post, user, type) already engaged
	OtherFailures     int
	TotalTime         time.Duration
	MinResponseTime   time.Duration
	MaxResponseTime   time.Duration
	TotalResponseTime time.Duration
	ResponseTimes     []time.Duration
	ErrorCounts       map[string]int
	UserStats         map[string]int // Requests per user
	TypeStats         map[string]int // Requests per engagement type
	Lock              sync.Mutex
}

func main() {

	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	postIDsStr := flag.String("p", "", "Comma-separated list of post UUIDs to engage with (required)")
	userIDsStr := flag.String("u", "", "Comma-separated list of user UUIDs to distribute load across (required)")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	postIDs := splitIDs(*postIDsStr)
	userIDs := splitIDs(*userIDsStr)
	if len(postIDs) == 0 || len(userIDs) == 0 {
		fmt.Println("Both -p (post UUIDs) and -u (user UUIDs) are required.")
		fmt.Println("Seed a few accounts and approved posts first, then pass their ids here.")
		return
	}

	// The interesting behavior is contention: many users hammering few posts
	// exercises the daily quota, the uniqueness guard and the credit path at
	// the same time.
	engagementTypes := []string{"like", "like", "like", "comment", "comment", "share"}

	fmt.Printf("Load testing engagements across %d users and %d posts\n", len(userIDs), len(postIDs))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	// Initialize test statistics
	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		UserStats:       make(map[string]int),
		TypeStats:       make(map[string]int),
	}

	// Channel to collect results
	results := make(chan TestResult, *totalRequests)

	// Channel to distribute work
	jobs := make(chan int, *totalRequests)

	// Start worker goroutines
	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, postIDs, userIDs, engagementTypes, jobs, results, stats)
		}()
	}

	// Fill the jobs channel
	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// Start a goroutine to collect results
	go func() {
		for result := range results {
			stats.Lock.Lock()
			switch {
			case result.StatusCode == http.StatusCreated:
				stats.Credited++
			case result.StatusCode == http.StatusTooManyRequests:
				stats.QuotaDenied++
			case result.StatusCode == http.StatusConflict:
				stats.Duplicates++
			default:
				stats.OtherFailures++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				} else if result.StatusCode != 0 {
					errMsg = fmt.Sprintf("HTTP status code %d", result.StatusCode)
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	// Start the timer
	startTime := time.Now()
	fmt.Println("Test running...")

	// Print progress periodically
	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.Credited + stats.QuotaDenied + stats.Duplicates + stats.OtherFailures
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	// Wait for all workers to finish
	wg.Wait()
	close(results)
	ticker.Stop()

	// Calculate the total test time
	stats.TotalTime = time.Since(startTime)

	// Print results
	printResults(stats)
}

func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func worker(baseURL string, delayMs int, postIDs, userIDs, engagementTypes []string,
	jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for range jobs {
		// Optional delay between requests to shape the arrival rate
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		// Randomly select a user, post and engagement type
		userID := userIDs[rand.Intn(len(userIDs))]
		postID := postIDs[rand.Intn(len(postIDs))]
		engagementType := engagementTypes[rand.Intn(len(engagementTypes))]

		stats.Lock.Lock()
		stats.UserStats[userID]++
		stats.TypeStats[engagementType]++
		stats.Lock.Unlock()

		apiURL := fmt.Sprintf("%s/posts/%s/engagements", baseURL, postID)

		engagement := Engagement{
			UserID: userID,
			Type:   engagementType,
		}

		jsonData, err := json.Marshal(engagement)
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}

		// Create request
		req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		// Send the request and measure response time
		startTime := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(startTime)

		result := TestResult{
			ResponseTime: responseTime,
		}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	tps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	// Calculate average response time
	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	// Calculate percentiles
	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		// Sort the response times
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)

		// Simple bubble sort (OK for small datasets)
		for i := 0; i < len(sortedTimes); i++ {
			for j := i + 1; j < len(sortedTimes); j++ {
				if sortedTimes[i] > sortedTimes[j] {
					sortedTimes[i], sortedTimes[j] = sortedTimes[j], sortedTimes[i]
				}
			}
		}

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	pct := func(n int) float64 {
		return float64(n) / float64(stats.TotalRequests) * 100
	}

	// Print results
	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Credited (201):      %d (%.1f%%)\n", stats.Credited, pct(stats.Credited))
	fmt.Printf("Quota Denied (429):  %d (%.1f%%)\n", stats.QuotaDenied, pct(stats.QuotaDenied))
	fmt.Printf("Duplicates (409):    %d (%.1f%%)\n", stats.Duplicates, pct(stats.Duplicates))
	fmt.Printf("Other Failures:      %d (%.1f%%)\n", stats.OtherFailures, pct(stats.OtherFailures))
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Requests Per Second: %.2f\n", tps)

	fmt.Println("\n--------------- RESPONSE TIMES ----------------")
	fmt.Printf("Average: %v\n", avgResponseTime)
	fmt.Printf("Minimum: %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum: %v\n", stats.MaxResponseTime)
	fmt.Printf("P50:     %v\n", p50)
	fmt.Printf("P90:     %v\n", p90)
	fmt.Printf("P95:     %v\n", p95)
	fmt.Printf("P99:     %v\n", p99)

	fmt.Println("\n------------- LOAD DISTRIBUTION ---------------")
	for userID, count := range stats.UserStats {
		fmt.Printf("User %s: %d requests\n", userID, count)
	}
	for engagementType, count := range stats.TypeStats {
		fmt.Printf("Type %-8s %d requests\n", engagementType+":", count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n------------------ ERRORS ---------------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%s: %d\n", errMsg, count)
		}
	}
}
