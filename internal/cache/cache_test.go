package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

// rawPut bypasses Put's schema stamping so tests can plant payloads from
// other schema versions.
func rawPut(c *DiskCache, key Digest, payload *Payload) error {
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

func openTemp(t *testing.T) *DiskCache {
	t.Helper()
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return c
}

func TestPutGetRoundTrip(t *testing.T) {
	c := openTemp(t)
	key := Key([]byte(`{"schema":1,"file":0,"stmts":[]}`))
	in := &Payload{SourcePath: "a.json", Tree: []byte{0x90}, Violations: 0}
	if err := c.Put(key, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	var out Payload
	hit, err := c.Get(key, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !hit {
		t.Fatal("miss after put")
	}
	if out.SourcePath != in.SourcePath || string(out.Tree) != string(in.Tree) {
		t.Errorf("payload = %+v, want %+v", out, in)
	}
}

func TestGetMiss(t *testing.T) {
	c := openTemp(t)
	var out Payload
	hit, err := c.Get(Key([]byte("never stored")), &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Error("hit for a key never stored")
	}
}

func TestSchemaMismatchIsAMiss(t *testing.T) {
	c := openTemp(t)
	key := Key([]byte("payload"))
	if err := c.Put(key, &Payload{SourcePath: "x"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Corrupt the schema by writing a raw payload from the future.
	future := &Payload{Schema: schemaVersion + 1, SourcePath: "x"}
	c2 := &DiskCache{dir: c.dir}
	if err := rawPut(c2, key, future); err != nil {
		t.Fatalf("raw put: %v", err)
	}

	var out Payload
	hit, err := c.Get(key, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Error("future schema served as a hit")
	}
}

func TestKeyIsContentAddressed(t *testing.T) {
	if Key([]byte("a")) == Key([]byte("b")) {
		t.Error("distinct content collided")
	}
	if Key([]byte("same")) != Key([]byte("same")) {
		t.Error("equal content diverged")
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var c *DiskCache
	if err := c.Put(Key([]byte("x")), &Payload{}); err != nil {
		t.Errorf("nil put: %v", err)
	}
	hit, err := c.Get(Key([]byte("x")), &Payload{})
	if hit || err != nil {
		t.Errorf("nil get = %v, %v", hit, err)
	}
	if err := c.DropAll(); err != nil {
		t.Errorf("nil drop: %v", err)
	}
}

func TestDropAllEmptiesCache(t *testing.T) {
	c := openTemp(t)
	key := Key([]byte("tree"))
	if err := c.Put(key, &Payload{SourcePath: "a.json", Tree: []byte{0x90}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	var out Payload
	hit, err := c.Get(key, &out)
	if err != nil {
		t.Fatalf("get after drop: %v", err)
	}
	if hit {
		t.Error("entry survived DropAll")
	}
}
