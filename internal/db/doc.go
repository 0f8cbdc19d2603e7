/*
Package db holds the Postgres schema used by the relational repositories.

	conn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Tables:

  - event: one row per gift exchange, looked up by public_id or admin_id
  - participant: keyed by (event_id, id), ordered by position
  - exclusion: name-based constraints in insertion order (seq)
*/
package db
