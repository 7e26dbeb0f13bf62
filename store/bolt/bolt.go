package bolt

import (
	"encoding/json"
	"time"

	"github.com/boltdb/bolt"

	"github.com/preciossuperpy/preciossuperpy"
)

var tableBucket = []byte("tables")

// Driver owns the connection to a bolt database.
type Driver struct {
	store *bolt.DB
}

func (d *Driver) Open(path string) error {
	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}
	d.store = store

	return d.store.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(tableBucket)
		return err
	})
}

func (d *Driver) Close() error {
	return d.store.Close()
}

// TableStore keeps whole table snapshots in a bolt bucket, one key per
// table. It backs offline runs that cannot reach the spreadsheet.
type TableStore struct {
	Driver *Driver
}

func (s *TableStore) Read(name string) (preciossuperpy.Table, error) {
	var table preciossuperpy.Table
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(tableBucket).Get([]byte(name))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &table)
	})
	if err != nil {
		return preciossuperpy.Table{}, err
	}
	return table, nil
}

func (s *TableStore) Write(name string, table preciossuperpy.Table) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(table)
		if err != nil {
			return err
		}
		return tx.Bucket(tableBucket).Put([]byte(name), data)
	})
}
