package db

type migration struct {
	name string
	sql  string
}

var postgresMigrations = []migration{
	{
		name: "create bulletin table",
		sql: `
			CREATE TABLE IF NOT EXISTS bulletin (
				bulletin_id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
				user_id BIGINT NOT NULL CHECK (user_id > 0),
				category VARCHAR(255) NOT NULL,
				message TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_bulletin_category ON bulletin(category, bulletin_id);
		`,
	},
	{
		name: "create access level table",
		sql: `
			CREATE TABLE IF NOT EXISTS access_level (
				access_level_id SMALLINT PRIMARY KEY
					CHECK (access_level_id BETWEEN 1 AND 3),
				description VARCHAR(255) NOT NULL UNIQUE
			)
		`,
	},
}

var sqliteMigrations = []migration{
	{
		name: "create bulletin table",
		sql: `
			CREATE TABLE IF NOT EXISTS bulletin (
				bulletin_id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL CHECK (user_id > 0),
				category TEXT NOT NULL,
				message TEXT NOT NULL,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_bulletin_category ON bulletin(category, bulletin_id);
		`,
	},
	{
		name: "create access level table",
		sql: `
			CREATE TABLE IF NOT EXISTS access_level (
				access_level_id INTEGER PRIMARY KEY
					CHECK (access_level_id BETWEEN 1 AND 3),
				description TEXT NOT NULL UNIQUE
			)
		`,
	},
}
