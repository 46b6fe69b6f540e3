package db

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    email TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS checklist (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS checklistitem (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    checklist_id INTEGER NOT NULL REFERENCES checklist(id) ON DELETE CASCADE
);`,
	`CREATE TABLE IF NOT EXISTS activity_events (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    username TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    meta TEXT
);`,
	`CREATE INDEX IF NOT EXISTS idx_activity_events_occurred_at ON activity_events (occurred_at);`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id BIGINT AUTO_INCREMENT PRIMARY KEY,
    username VARCHAR(255) NOT NULL UNIQUE,
    password_hash VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS checklist (
    id BIGINT AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(255) NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS checklistitem (
    id BIGINT AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    checklist_id BIGINT NOT NULL,
    CONSTRAINT fk_checklistitem_checklist FOREIGN KEY (checklist_id)
        REFERENCES checklist (id) ON DELETE CASCADE
);`,
	`CREATE TABLE IF NOT EXISTS activity_events (
    id CHAR(36) PRIMARY KEY,
    occurred_at DATETIME(6) NOT NULL,
    type VARCHAR(32) NOT NULL,
    username VARCHAR(255) NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    meta TEXT,
    INDEX idx_activity_events_occurred_at (occurred_at)
);`,
}
