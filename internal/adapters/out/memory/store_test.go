package memory_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"parcelrouting/internal/adapters/out/memory"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type item struct {
	id   kernel.UUID
	code string
	tags []string
}

func newItem(code string) *item {
	return &item{id: kernel.NewUUID(), code: code, tags: []string{"a"}}
}

func cloneItem(i *item) *item {
	cp := *i
	cp.tags = append([]string(nil), i.tags...)
	return &cp
}

var errBlankCode = errors.New("code is blank")

func newItemStore() *memory.Store[*item] {
	return memory.NewStore("item", func(i *item) kernel.UUID { return i.id },
		memory.WithClone(cloneItem),
		memory.WithValidator(func(i *item) error {
			if i == nil || i.code == "" {
				return errBlankCode
			}
			return nil
		}),
		memory.WithUniqueIndex("code", func(i *item) string { return strings.ToLower(i.code) }),
	)
}

func TestStore_AddGet(t *testing.T) {
	t.Run("should return what was added", func(t *testing.T) {
		s := newItemStore()
		it := newItem("A-1")

		stored, err := s.Add(it)
		require.NoError(t, err)

		got, ok := s.Get(it.id)
		require.True(t, ok)
		assert.Equal(t, it, got)
		assert.Equal(t, it, stored)
		assert.True(t, s.Exists(it.id))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("should reject duplicate id and keep the first", func(t *testing.T) {
		s := newItemStore()
		first := newItem("A-1")
		_, err := s.Add(first)
		require.NoError(t, err)

		second := newItem("B-2")
		second.id = first.id
		_, err = s.Add(second)

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		got, _ := s.Get(first.id)
		assert.Equal(t, "A-1", got.code)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("should reject duplicate unique key", func(t *testing.T) {
		s := newItemStore()
		_, err := s.Add(newItem("A-1"))
		require.NoError(t, err)

		_, err = s.Add(newItem("a-1"))

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		var exists *errs.ObjectAlreadyExistsError
		require.ErrorAs(t, err, &exists)
		assert.Equal(t, "item code", exists.ParamName)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("should run validator", func(t *testing.T) {
		s := newItemStore()

		_, err := s.Add(newItem(""))

		require.ErrorIs(t, err, errBlankCode)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("should report absent entity", func(t *testing.T) {
		got, ok := newItemStore().Get(kernel.NewUUID())

		assert.False(t, ok)
		assert.Nil(t, got)
	})
}

func TestStore_Isolation(t *testing.T) {
	s := newItemStore()
	it := newItem("A-1")
	_, err := s.Add(it)
	require.NoError(t, err)

	it.tags[0] = "changed by caller"
	got, _ := s.Get(it.id)
	assert.Equal(t, "a", got.tags[0])

	got.tags[0] = "changed by reader"
	again, _ := s.Get(it.id)
	assert.Equal(t, "a", again.tags[0])
}

func TestStore_GetAll(t *testing.T) {
	s := newItemStore()
	first, second, third := newItem("1"), newItem("2"), newItem("3")
	for _, it := range []*item{first, second, third} {
		_, err := s.Add(it)
		require.NoError(t, err)
	}

	snapshot := s.GetAll()
	require.NoError(t, s.Delete(second.id))

	require.Len(t, snapshot, 3)
	assert.Equal(t, []string{"1", "2", "3"}, codes(snapshot))
	assert.Equal(t, []string{"1", "3"}, codes(s.GetAll()))

	updated := cloneItem(first)
	updated.code = "1b"
	_, err := s.Update(updated)
	require.NoError(t, err)
	assert.Equal(t, []string{"1b", "3"}, codes(s.GetAll()))
}

func TestStore_Update(t *testing.T) {
	t.Run("should fail for unknown id and leave store unchanged", func(t *testing.T) {
		s := newItemStore()
		_, err := s.Add(newItem("A-1"))
		require.NoError(t, err)

		_, err = s.Update(newItem("B-1"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, 1, s.Len())
		_, ok := s.GetBy("code", "b-1")
		assert.False(t, ok)
	})

	t.Run("should move the index key", func(t *testing.T) {
		s := newItemStore()
		it := newItem("A-1")
		_, err := s.Add(it)
		require.NoError(t, err)

		it.code = "A-2"
		_, err = s.Update(it)
		require.NoError(t, err)

		_, ok := s.GetBy("code", "a-1")
		assert.False(t, ok)
		got, ok := s.GetBy("code", "a-2")
		require.True(t, ok)
		assert.Equal(t, it.id, got.id)

		_, err = s.Add(newItem("A-1"))
		require.NoError(t, err)
	})

	t.Run("should reject key owned by another entity", func(t *testing.T) {
		s := newItemStore()
		a, b := newItem("A"), newItem("B")
		_, _ = s.Add(a)
		_, _ = s.Add(b)

		b.code = "A"
		_, err := s.Update(b)

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		got, _ := s.GetBy("code", "b")
		assert.Equal(t, "B", got.code)
	})
}

func TestStore_Modify(t *testing.T) {
	t.Run("should store the mutated copy", func(t *testing.T) {
		s := newItemStore()
		it := newItem("A-1")
		_, _ = s.Add(it)

		got, err := s.Modify(it.id, func(cur *item) (*item, error) {
			cur.code = "A-2"
			cur.tags = append(cur.tags, "b")
			return cur, nil
		})

		require.NoError(t, err)
		assert.Equal(t, "A-2", got.code)
		assert.Equal(t, "A-1", it.code)
		stored, ok := s.GetBy("code", "a-2")
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, stored.tags)
		_, ok = s.GetBy("code", "a-1")
		assert.False(t, ok)
	})

	t.Run("should leave store unchanged when mutate fails", func(t *testing.T) {
		s := newItemStore()
		it := newItem("A-1")
		_, _ = s.Add(it)
		errStop := errors.New("stop")

		_, err := s.Modify(it.id, func(cur *item) (*item, error) {
			cur.code = "A-2"
			return nil, errStop
		})

		require.ErrorIs(t, err, errStop)
		got, _ := s.Get(it.id)
		assert.Equal(t, "A-1", got.code)
	})

	t.Run("should run the validator and unique indexes", func(t *testing.T) {
		s := newItemStore()
		a, b := newItem("A"), newItem("B")
		_, _ = s.Add(a)
		_, _ = s.Add(b)

		_, err := s.Modify(b.id, func(cur *item) (*item, error) {
			cur.code = ""
			return cur, nil
		})
		require.ErrorIs(t, err, errBlankCode)

		_, err = s.Modify(b.id, func(cur *item) (*item, error) {
			cur.code = "a"
			return cur, nil
		})
		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	})

	t.Run("should refuse to change the id", func(t *testing.T) {
		s := newItemStore()
		it := newItem("A-1")
		_, _ = s.Add(it)

		_, err := s.Modify(it.id, func(cur *item) (*item, error) {
			return newItem("A-1"), nil
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("should fail for unknown id", func(t *testing.T) {
		_, err := newItemStore().Modify(kernel.NewUUID(), func(cur *item) (*item, error) {
			return cur, nil
		})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestStore_Delete(t *testing.T) {
	s := newItemStore()
	it := newItem("A-1")
	_, _ = s.Add(it)

	require.NoError(t, s.Delete(it.id))

	_, ok := s.Get(it.id)
	assert.False(t, ok)
	_, ok = s.GetBy("code", "a-1")
	assert.False(t, ok)
	require.ErrorIs(t, s.Delete(it.id), errs.ErrObjectNotFound)
}

func TestStore_GetByUnknownIndex(t *testing.T) {
	_, ok := newItemStore().GetBy("missing", "x")
	assert.False(t, ok)
}

func codes(items []*item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.code
	}
	return out
}

// StoreConcurrencyTestSuite hammers one store from many goroutines.
type StoreConcurrencyTestSuite struct {
	suite.Suite
	store *memory.Store[*item]
}

func (suite *StoreConcurrencyTestSuite) SetupTest() {
	suite.store = newItemStore()
}

func (suite *StoreConcurrencyTestSuite) TestConcurrentAddsOfSameKeyAdmitOne() {
	const workers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := suite.store.Add(newItem("SHARED")); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, successes)
	suite.Equal(1, suite.store.Len())
}

func (suite *StoreConcurrencyTestSuite) TestConcurrentMixedOperations() {
	const workers = 16
	const perWorker = 50
	var wg sync.WaitGroup

	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				it := newItem(fmt.Sprintf("%d-%d", w, i))
				_, err := suite.store.Add(it)
				suite.NoError(err)

				it.code += "-u"
				_, err = suite.store.Update(it)
				suite.NoError(err)

				_ = suite.store.GetAll()
				if i%2 == 0 {
					suite.NoError(suite.store.Delete(it.id))
				}
			}
		}()
	}
	wg.Wait()

	suite.Equal(workers*perWorker/2, suite.store.Len())
	for _, it := range suite.store.GetAll() {
		got, ok := suite.store.GetBy("code", strings.ToLower(it.code))
		suite.True(ok)
		suite.Equal(it.id, got.id)
	}
}

func (suite *StoreConcurrencyTestSuite) TestConcurrentModifiesLoseNoUpdate() {
	const workers = 32
	const perWorker = 100
	it := newItem("COUNTER")
	_, err := suite.store.Add(it)
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				_, err := suite.store.Modify(it.id, func(cur *item) (*item, error) {
					cur.tags = append(cur.tags, "x")
					return cur, nil
				})
				suite.NoError(err)
			}
		}()
	}
	wg.Wait()

	got, ok := suite.store.Get(it.id)
	suite.Require().True(ok)
	suite.Len(got.tags, 1+workers*perWorker)
}

func TestStoreConcurrencyTestSuite(t *testing.T) {
	suite.Run(t, new(StoreConcurrencyTestSuite))
}
