// Package memory contains integration tests for the memory store.
// Tests run against a SurrealDB container and are skipped in short mode.
package memory

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/raphaelgruber/daytrip-go/internal/db"
)

var testStore *Store
var testContainer testcontainers.Container

// TestMain sets up and tears down the SurrealDB container for all tests.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	// Disable ryuk (cleanup container) as it can cause issues in some environments
	os.Setenv("TESTCONTAINERS_RYUK_DISABLED", "true")

	ctx := context.Background()

	var err error
	testContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "surrealdb/surrealdb:v3.0.0-beta.1",
			ExposedPorts: []string{"8000/tcp"},
			Cmd:          []string{"start", "--log", "info", "--user", "root", "--pass", "root"},
			WaitingFor:   wait.ForLog("Started web server").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("Failed to start SurrealDB container: %v", err)
	}

	host, err := testContainer.Host(ctx)
	if err != nil {
		log.Fatalf("Failed to get container host: %v", err)
	}
	// Workaround: testcontainers may return "null" as host in some environments
	if host == "" || host == "null" {
		host = "localhost"
	}
	mappedPort, err := testContainer.MappedPort(ctx, "8000")
	if err != nil {
		log.Fatalf("Failed to get mapped port: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client, err := db.NewClient(ctx, db.Config{
		URL:       fmt.Sprintf("ws://%s:%s/rpc", host, mappedPort.Port()),
		Namespace: "test",
		Database:  "test",
		Username:  "root",
		Password:  "root",
		AuthLevel: "root",
	}, logger)
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := client.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	testStore = NewStore(client, logger)

	code := m.Run()

	_ = testStore.Close(ctx)
	_ = testContainer.Terminate(ctx)

	os.Exit(code)
}

func requireIntegration(t *testing.T) context.Context {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	// Every test starts from an empty graph.
	require.NoError(t, testStore.client.WipeData(ctx))
	return ctx
}

func TestEnsureUser_GetOrCreate(t *testing.T) {
	ctx := requireIntegration(t)

	first, err := testStore.ensureUser(ctx, "repeat-user")
	require.NoError(t, err)
	require.Equal(t, "repeat-user", first.ID.ID)
	require.False(t, first.Created.IsZero())

	again, err := testStore.ensureUser(ctx, "repeat-user")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.True(t, first.Created.Equal(again.Created), "repeat upsert must not recreate the node")
}

func TestWipeDataClearsGraph(t *testing.T) {
	ctx := requireIntegration(t)

	require.Equal(t, WriteCommitted, testStore.AddMemory(ctx, "wipe-user", "gone soon"))
	require.Equal(t, WriteCommitted, testStore.AddPreference(ctx, "wipe-user", "Museums"))

	require.NoError(t, testStore.client.WipeData(ctx))

	assert.Empty(t, testStore.RetrieveMemories(ctx, "wipe-user"))
	assert.Empty(t, testStore.GetPreferences(ctx, "wipe-user"))
}

func TestAddMemory_OrderedNewestFirst(t *testing.T) {
	ctx := requireIntegration(t)

	status := testStore.AddMemory(ctx, "order-user", "A")
	require.Equal(t, WriteCommitted, status)

	// SurrealDB datetimes have sub-millisecond resolution, but keep the two
	// writes clearly apart so ordering is unambiguous.
	time.Sleep(50 * time.Millisecond)

	status = testStore.AddMemory(ctx, "order-user", "B")
	require.Equal(t, WriteCommitted, status)

	memories := testStore.RetrieveMemories(ctx, "order-user")
	require.Equal(t, []string{"B", "A"}, memories, "newest memory must come first")
}

func TestAddMemory_NeverDeduplicates(t *testing.T) {
	ctx := requireIntegration(t)

	testStore.AddMemory(ctx, "dup-user", "same text")
	testStore.AddMemory(ctx, "dup-user", "same text")

	memories := testStore.RetrieveMemories(ctx, "dup-user")
	assert.Len(t, memories, 2, "each memory is a distinct event in time")
}

func TestAddMemory_EmptyInputDropped(t *testing.T) {
	ctx := requireIntegration(t)

	assert.Equal(t, WriteDropped, testStore.AddMemory(ctx, "", "text"))
	assert.Equal(t, WriteDropped, testStore.AddMemory(ctx, "some-user", "   "))
}

func TestAddPreference_Idempotent(t *testing.T) {
	ctx := requireIntegration(t)

	require.Equal(t, WriteCommitted, testStore.AddPreference(ctx, "pref-user", "Beaches"))
	require.Equal(t, WriteCommitted, testStore.AddPreference(ctx, "pref-user", "Beaches"))

	prefs := testStore.GetPreferences(ctx, "pref-user")
	assert.Equal(t, []string{"Beaches"}, prefs, "re-adding must not create a duplicate edge")
}

func TestAddPreference_SharedNodeAcrossUsers(t *testing.T) {
	ctx := requireIntegration(t)

	testStore.AddPreference(ctx, "alice", "Shopping")
	testStore.AddPreference(ctx, "bob", "Shopping")

	// Both users see the preference; the node itself exists once.
	assert.Contains(t, testStore.GetPreferences(ctx, "alice"), "Shopping")
	assert.Contains(t, testStore.GetPreferences(ctx, "bob"), "Shopping")

	results, err := testStore.client.Query(ctx,
		`SELECT name FROM preference WHERE name = $name`,
		map[string]any{"name": "Shopping"})
	require.NoError(t, err)
	require.NotNil(t, results)
	require.Len(t, *results, 1)
	assert.Len(t, (*results)[0].Result, 1, "preference nodes are deduplicated globally")
}

func TestAddPreference_Trimmed(t *testing.T) {
	ctx := requireIntegration(t)

	require.Equal(t, WriteCommitted, testStore.AddPreference(ctx, "trim-user", "  Nature  "))
	assert.Equal(t, []string{"Nature"}, testStore.GetPreferences(ctx, "trim-user"))
}

func TestUnknownUser_EmptyNotError(t *testing.T) {
	ctx := requireIntegration(t)

	assert.Empty(t, testStore.RetrieveMemories(ctx, "nonexistent"))
	assert.Empty(t, testStore.GetPreferences(ctx, "nonexistent"))
}

func TestPreferencesDoNotLeakAcrossUsers(t *testing.T) {
	ctx := requireIntegration(t)

	testStore.AddPreference(ctx, "leak-a", "Historical Sites")
	testStore.AddPreference(ctx, "leak-b", "Food Experiences")

	assert.Equal(t, []string{"Historical Sites"}, testStore.GetPreferences(ctx, "leak-a"))
	assert.Equal(t, []string{"Food Experiences"}, testStore.GetPreferences(ctx, "leak-b"))
}
