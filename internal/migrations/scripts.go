package migrations

// All lists every migration in apply order. Never reorder or edit an entry
// that has shipped; add a new version instead.
var All = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `
CREATE TABLE IF NOT EXISTS users (
	user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	username VARCHAR(50) NOT NULL UNIQUE,
	email VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	is_admin BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`,
	},
	{
		Version: 2,
		Name:    "create_albums",
		SQL: `
CREATE TABLE IF NOT EXISTS albums (
	album_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	artist VARCHAR(255) NOT NULL,
	title VARCHAR(255) NOT NULL,
	release_date VARCHAR(10) NOT NULL DEFAULT '',
	cover_url TEXT NOT NULL DEFAULT '',
	spotify_id VARCHAR(64) NOT NULL DEFAULT '',
	source VARCHAR(16) NOT NULL DEFAULT 'manual',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_albums_artist_title
	ON albums (LOWER(artist), LOWER(title));
CREATE INDEX IF NOT EXISTS idx_albums_spotify_id
	ON albums (spotify_id) WHERE spotify_id <> '';
`,
	},
	{
		Version: 3,
		Name:    "create_lists",
		SQL: `
CREATE TABLE IF NOT EXISTS lists (
	list_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	is_public BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_lists_user_id ON lists (user_id);
`,
	},
	{
		Version: 4,
		Name:    "create_list_items",
		SQL: `
CREATE TABLE IF NOT EXISTS list_items (
	list_item_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	list_id UUID NOT NULL REFERENCES lists(list_id) ON DELETE CASCADE,
	album_id UUID NOT NULL REFERENCES albums(album_id) ON DELETE CASCADE,
	position INTEGER NOT NULL CHECK (position >= 1),
	note TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_list_items_list_album
	ON list_items (list_id, album_id);
ALTER TABLE list_items
	DROP CONSTRAINT IF EXISTS uq_list_items_list_position;
ALTER TABLE list_items
	ADD CONSTRAINT uq_list_items_list_position
	UNIQUE (list_id, position) DEFERRABLE INITIALLY DEFERRED;
`,
	},
	{
		Version: 5,
		Name:    "create_track_picks",
		SQL: `
CREATE TABLE IF NOT EXISTS track_picks (
	track_pick_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	album_id UUID NOT NULL REFERENCES albums(album_id) ON DELETE CASCADE,
	track_number INTEGER NOT NULL CHECK (track_number >= 1),
	track_title VARCHAR(255) NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_track_picks_user_album
	ON track_picks (user_id, album_id);
`,
	},
	{
		Version: 6,
		Name:    "create_extension_tokens",
		SQL: `
CREATE TABLE IF NOT EXISTS extension_tokens (
	token_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	token_hash CHAR(64) NOT NULL UNIQUE,
	expires_at TIMESTAMPTZ NOT NULL,
	revoked_at TIMESTAMPTZ,
	last_used_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_extension_tokens_user_id
	ON extension_tokens (user_id);
`,
	},
	{
		Version: 7,
		Name:    "create_weekly_new_releases",
		SQL: `
CREATE TABLE IF NOT EXISTS weekly_new_releases (
	release_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	artist VARCHAR(255) NOT NULL,
	title VARCHAR(255) NOT NULL,
	release_date VARCHAR(10) NOT NULL DEFAULT '',
	cover_url TEXT NOT NULL DEFAULT '',
	spotify_id VARCHAR(64) NOT NULL DEFAULT '',
	week_of DATE NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_weekly_releases_week_spotify
	ON weekly_new_releases (week_of, spotify_id);
CREATE INDEX IF NOT EXISTS idx_weekly_releases_week_of
	ON weekly_new_releases (week_of);
`,
	},
}
