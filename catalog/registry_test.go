package catalog

import (
	"testing"

	"chunkstore/storage"
)

func newTestTable() *storage.Table {
	schema := []storage.ColumnDefinition{
		{Name: "id", Type: storage.DataTypeInt64, Nullable: false},
	}
	return storage.NewTable(schema, 100, false)
}

func TestRegistryRegisterAndGetTable(t *testing.T) {
	r := NewRegistry()
	table := newTestTable()

	r.Register("measurements", table)

	got, err := r.GetTable("measurements")
	if err != nil {
		t.Fatalf("GetTable: %v", err)
	}
	if got != table {
		t.Fatal("GetTable returned a different table instance than registered")
	}
}

func TestRegistryGetTableNotFound(t *testing.T) {
	r := NewRegistry()

	_, err := r.GetTable("missing")
	if err == nil {
		t.Fatal("expected NotFound error for unregistered table")
	}
	if !storage.IsKind(err, storage.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestRegistryRegisterReplacesExisting(t *testing.T) {
	r := NewRegistry()
	first := newTestTable()
	second := newTestTable()

	r.Register("t", first)
	idBefore, _ := r.Describe("t")

	r.Register("t", second)
	idAfter, _ := r.Describe("t")

	got, err := r.GetTable("t")
	if err != nil {
		t.Fatal(err)
	}
	if got != second {
		t.Fatal("GetTable should return the most recently registered table")
	}
	if idBefore == idAfter {
		t.Fatal("re-registering should mint a fresh identity token")
	}
}

func TestRegistryDescribeUnknownName(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Describe("nope")
	if ok {
		t.Fatal("Describe should report false for an unregistered name")
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("t", newTestTable())
	r.Unregister("t")

	_, err := r.GetTable("t")
	if err == nil {
		t.Fatal("expected NotFound after Unregister")
	}
}

func TestRegistryListTablesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("zeta", newTestTable())
	r.Register("alpha", newTestTable())
	r.Register("mu", newTestTable())

	got := r.ListTables()
	want := []string{"alpha", "mu", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("ListTables() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListTables() = %v, want %v", got, want)
		}
	}
}
