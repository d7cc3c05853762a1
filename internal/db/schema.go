package db

// SchemaSQL contains the database schema initialization SQL.
//
// Users and preferences are keyed by caller-supplied strings, so both use
// deterministic record ids (user:⟨id⟩, preference:⟨name⟩) and UPSERT gives
// get-or-create semantics. Memories are append-only events and get a fresh
// random id per write.
const SchemaSQL = `
    -- ==========================================================================
    -- USER TABLE
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS user SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS created ON user TYPE datetime DEFAULT time::now();

    -- ==========================================================================
    -- MEMORY TABLE
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS memory SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS content ON memory TYPE string;
    DEFINE FIELD IF NOT EXISTS timestamp ON memory TYPE datetime DEFAULT time::now();

    DEFINE INDEX IF NOT EXISTS memory_timestamp ON memory FIELDS timestamp;

    -- ==========================================================================
    -- PREFERENCE TABLE
    -- ==========================================================================
    -- Preference nodes are shared globally: two users with the same
    -- preference name reference the same record.
    DEFINE TABLE IF NOT EXISTS preference SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS name ON preference TYPE string;

    DEFINE INDEX IF NOT EXISTS preference_name ON preference FIELDS name UNIQUE;

    -- ==========================================================================
    -- HAS_MEMORY RELATION (user -> memory)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS has_memory TYPE RELATION IN user OUT memory SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS created ON has_memory TYPE datetime DEFAULT time::now();

    -- ==========================================================================
    -- HAS_PREFERENCE RELATION (user -> preference)
    -- ==========================================================================
    -- Unique constraint on [in, out] makes re-adding the same preference for
    -- the same user a no-op instead of a duplicate edge.
    DEFINE TABLE IF NOT EXISTS has_preference TYPE RELATION IN user OUT preference SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS created ON has_preference TYPE datetime DEFAULT time::now();
    DEFINE FIELD IF NOT EXISTS unique_key ON has_preference VALUE <string>string::concat(<string>in, "->", <string>out);
    DEFINE INDEX IF NOT EXISTS unique_has_preference ON has_preference FIELDS unique_key UNIQUE;
`
