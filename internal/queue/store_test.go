package queue_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"apjobs/internal/queue"
	"apjobs/internal/testsupport"
)

func TestDeviceCountsGroupsByDevice(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	db := testsupport.SeedDatabase(t, cfg)
	for i := 0; i < 3; i++ {
		testsupport.InsertJob(t, db, "phone1", "20260830", "http://builds/1")
	}
	for i := 0; i < 2; i++ {
		testsupport.InsertJob(t, db, "phone2", "20260830", "http://builds/1")
	}

	store, err := queue.Open(cfg)
	if err != nil {
		t.Fatalf("queue.Open: %v", err)
	}
	defer store.Close()

	counts, err := store.DeviceCounts(context.Background())
	if err != nil {
		t.Fatalf("DeviceCounts: %v", err)
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Device < counts[j].Device })
	want := []queue.DeviceCount{
		{Count: 3, Device: "phone1"},
		{Count: 2, Device: "phone2"},
	}
	if len(counts) != len(want) {
		t.Fatalf("expected %d devices, got %v", len(want), counts)
	}
	for i, entry := range want {
		if counts[i] != entry {
			t.Fatalf("device count %d: expected %+v, got %+v", i, entry, counts[i])
		}
	}
}

func TestBuildCountsGroupsByBuildPair(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	db := testsupport.SeedDatabase(t, cfg)
	testsupport.InsertJob(t, db, "phone1", "20260829", "http://builds/a")
	testsupport.InsertJob(t, db, "phone2", "20260829", "http://builds/a")
	testsupport.InsertJob(t, db, "phone1", "20260830", "http://builds/b")

	store, err := queue.Open(cfg)
	if err != nil {
		t.Fatalf("queue.Open: %v", err)
	}
	defer store.Close()

	counts, err := store.BuildCounts(context.Background())
	if err != nil {
		t.Fatalf("BuildCounts: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 build groups, got %v", counts)
	}
	byID := make(map[string]queue.BuildCount, len(counts))
	for _, entry := range counts {
		byID[entry.BuildID] = entry
	}
	if got := byID["20260829"]; got.Count != 2 || got.BuildURL != "http://builds/a" {
		t.Fatalf("unexpected group for 20260829: %+v", got)
	}
	if got := byID["20260830"]; got.Count != 1 {
		t.Fatalf("unexpected group for 20260830: %+v", got)
	}
}

func TestPendingTestsJoinsJobs(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	db := testsupport.SeedDatabase(t, cfg)

	store, err := queue.Open(cfg)
	if err != nil {
		t.Fatalf("queue.Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	count, err := store.PendingTests(ctx)
	if err != nil {
		t.Fatalf("PendingTests: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 pending tests, got %d", count)
	}

	jobID := testsupport.InsertJob(t, db, "phone1", "20260830", "http://builds/1")
	testsupport.InsertTest(t, db, jobID, "smoketest")
	testsupport.InsertTest(t, db, jobID, "s1s2s3")

	count, err = store.PendingTests(ctx)
	if err != nil {
		t.Fatalf("PendingTests: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 pending tests, got %d", count)
	}
}

func TestPendingSubmissionsCountsRows(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	db := testsupport.SeedDatabase(t, cfg)

	store, err := queue.Open(cfg)
	if err != nil {
		t.Fatalf("queue.Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	count, err := store.PendingSubmissions(ctx)
	if err != nil {
		t.Fatalf("PendingSubmissions: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 submissions, got %d", count)
	}

	for _, machine := range []string{"phone1", "phone2", "phone3"} {
		testsupport.InsertSubmission(t, db, machine)
	}
	count, err = store.PendingSubmissions(ctx)
	if err != nil {
		t.Fatalf("PendingSubmissions: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 submissions, got %d", count)
	}
}

func TestOpenMissingDatabase(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	_, err := queue.Open(cfg)
	if err == nil {
		t.Fatal("expected error for missing database")
	}
	if !errors.Is(err, queue.ErrDataSourceUnavailable) {
		t.Fatalf("expected ErrDataSourceUnavailable, got %v", err)
	}
}

func TestOpenWithoutStateDir(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Paths.StateDir = ""

	_, err := queue.Open(cfg)
	if !errors.Is(err, queue.ErrDataSourceUnavailable) {
		t.Fatalf("expected ErrDataSourceUnavailable, got %v", err)
	}
}
