package duck

import (
	"database/sql"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	nt "searchbar/entity"
)

// Duck loads newline delimited json records into an in-memory duckdb.
type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	filename string
}

func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Load a file, replacing any records loaded before
func (dk *Duck) Load(path string) (err error) {

	_, err = dk.db.Exec("DROP TABLE IF EXISTS records")
	if err != nil {
		err = errors.Wrapf(err, "failed to drop table")
		return
	}

	err = loadRecords(dk.db, path)
	if err != nil {
		return
	}

	dk.filename = path
	return
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return dk.filename
}

// Count returns the number of loaded records
func (dk *Duck) Count() (count int, err error) {

	err = dk.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count)
	err = errors.Wrapf(err, "failed to count records")
	return
}

// Records returns every loaded record in file order
func (dk *Duck) Records() (records []nt.Record, err error) {

	rows, err := dk.db.Query("SELECT raw::VARCHAR FROM records ORDER BY id")
	if err != nil {
		err = errors.Wrapf(err, "failed to query records")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			err = errors.Wrapf(err, "failed to scan record")
			return
		}

		var data map[string]any
		if err = json.Unmarshal([]byte(raw), &data); err != nil {
			err = errors.Wrapf(err, "failed to unmarshal record %d", len(records)+1)
			return
		}
		records = append(records, data)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// unexported

func loadRecords(db *sql.DB, path string) (err error) {

	// Todo: read_json_objects wants a literal, look at binding the path instead
	quoted := strings.ReplaceAll(path, "'", "''")

	createRaw := fmt.Sprintf(`
		CREATE TABLE records AS
		SELECT
			ROW_NUMBER() OVER () as id,
			json_text::JSON as raw
		FROM read_json_objects('%s', format='newline_delimited') AS t(json_text)
	`, quoted)

	_, err = db.Exec(createRaw)
	err = errors.Wrapf(err, "failed to load records from %s", path)
	return
}
