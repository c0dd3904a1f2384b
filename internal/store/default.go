package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"log"
	"time"

	"git.lost.host/meutraa/beatedit/internal/game"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

type DefaultStore struct {
	Path string
	db   *sql.DB
}

func (s *DefaultStore) Init() error {
	db, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return errors.Wrap(err, "unable to open revision database")
	}

	initStatement := `
	create table if not exists revisions
	  (
		  id integer not null primary key,
		  sum text,
		  name text,
		  created integer,
		  data blob
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create revisions table")
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func hash(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Save stores sd unless it matches the latest revision of name, in which case
// the existing id is returned.
func (s *DefaultStore) Save(name string, sd *game.SaveData) (int64, error) {
	data, err := json.Marshal(sd)
	if nil != err {
		return 0, errors.Wrap(err, "unable to marshal chart")
	}
	sum := hash(data)

	var id int64
	var latest string
	err = s.db.QueryRow("select id, sum from revisions where name = ? order by id desc limit 1", name).Scan(&id, &latest)
	if nil == err && latest == sum {
		return id, nil
	} else if nil != err && err != sql.ErrNoRows {
		return 0, errors.Wrap(err, "unable to query latest revision")
	}

	res, err := s.db.Exec(
		"insert into revisions(sum, name, created, data) values(?, ?, ?, ?)",
		sum, name, time.Now().UnixNano(), data,
	)
	if nil != err {
		return 0, errors.Wrap(err, "unable to save revision")
	}
	return res.LastInsertId()
}

func (s *DefaultStore) Load(name string) ([]Revision, error) {
	revisions := []Revision{}
	rows, err := s.db.Query("select id, sum, name, created, data from revisions where name = ? order by id", name)
	if nil != err {
		return nil, errors.Wrap(err, "unable to load revisions")
	}
	defer rows.Close()
	for rows.Next() {
		revision, err := scan(rows)
		if nil != err {
			log.Println("unable to read revision", err)
			continue
		}
		revisions = append(revisions, *revision)
	}
	return revisions, errors.Wrap(rows.Err(), "unable to load revisions")
}

func (s *DefaultStore) Get(id int64) (*Revision, error) {
	row := s.db.QueryRow("select id, sum, name, created, data from revisions where id = ?", id)
	revision, err := scan(row)
	if err == sql.ErrNoRows {
		return nil, errors.Errorf("no revision %d", id)
	}
	return revision, err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scan(row scanner) (*Revision, error) {
	var r Revision
	var created int64
	var data []byte
	if err := row.Scan(&r.ID, &r.Sum, &r.Name, &created, &data); nil != err {
		return nil, err
	}
	r.Created = time.Unix(0, created)
	if err := json.Unmarshal(data, &r.Data); nil != err {
		return nil, errors.Wrapf(err, "unable to unmarshal revision %d", r.ID)
	}
	return &r, nil
}
