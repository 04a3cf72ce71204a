package journal

import (
	"context"
	"os"
)

// Stats holds journal statistics.
type Stats struct {
	DBPath      string      `json:"db_path"`
	DBSizeBytes int64       `json:"db_size_bytes"`
	Runs        int         `json:"runs"`
	Answers     int         `json:"answers"`
	Units       []UnitStats `json:"units"`
}

// UnitStats holds per-unit counts.
type UnitStats struct {
	Unit    string `json:"unit"`
	Answers int    `json:"answers"`
	Runs    int    `json:"runs"`
	Inputs  int    `json:"inputs"`
}

// Stats returns journal statistics.
func (j *Journal) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	if err := j.db.QueryRowContext(ctx, `SELECT COUNT(*), COUNT(DISTINCT run_id) FROM answers`).Scan(&st.Answers, &st.Runs); err != nil {
		return st, err
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT unit, COUNT(*), COUNT(DISTINCT run_id), COUNT(DISTINCT input_digest)
		FROM answers GROUP BY unit ORDER BY unit`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var u UnitStats
		if err := rows.Scan(&u.Unit, &u.Answers, &u.Runs, &u.Inputs); err != nil {
			return st, err
		}
		st.Units = append(st.Units, u)
	}
	return st, rows.Err()
}
