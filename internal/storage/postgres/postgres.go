package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/golang-cafe/company-directory/internal/storage"
)

// Table Structure:
//
// CREATE TABLE IF NOT EXISTS kv (
// 	k TEXT NOT NULL UNIQUE,
// 	v TEXT NOT NULL,
// 	PRIMARY KEY(k)
// );

// Store is a storage.Store backed by a single postgres key value table.
// Each Set is a plain upsert of the whole value, no row locking beyond
// what a single statement gives us.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db}
}

// GetDbConn tries to establish a connection to postgres and return the connection handler
func GetDbConn(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// CloseDbConn closes db conn
func CloseDbConn(conn *sql.DB) {
	conn.Close()
}

func (s *Store) Get(key string) (string, error) {
	var v string
	row := s.db.QueryRow(`SELECT v FROM kv WHERE k = $1`, key)
	if err := row.Scan(&v); err == sql.ErrNoRows {
		return "", storage.ErrKeyNotFound
	} else if err != nil {
		return "", err
	}
	return v, nil
}

func (s *Store) Set(key, value string) error {
	stmt := `INSERT INTO kv (k, v) VALUES ($1, $2) ON CONFLICT (k) DO UPDATE SET v = $2`
	_, err := s.db.Exec(stmt, key, value)
	return err
}
