package ndarray

// storage is the format-specific payload of an NDArray.
// The set of implementations is closed: denseStorage, csrStorage and
// rowSparseStorage. Code that needs the payload switches on the concrete type.
type storage interface {
	retain()
	release()
	unique() bool
	stored() int
}

// denseStorage holds product(shape) values in row-major order.
type denseStorage struct {
	values *buffer[float32]
}

func (s *denseStorage) retain()      { s.values.addRef() }
func (s *denseStorage) release()     { s.values.release() }
func (s *denseStorage) unique() bool { return s.values.isUnique() }
func (s *denseStorage) stored() int  { return s.values.len() }

// csrStorage holds a compressed sparse row matrix.
// Row r owns entries indptr[r]..indptr[r+1] of values and indices.
type csrStorage struct {
	values  *buffer[float32]
	indptr  *buffer[int64]
	indices *buffer[int64]
}

func (s *csrStorage) retain() {
	s.values.addRef()
	s.indptr.addRef()
	s.indices.addRef()
}

func (s *csrStorage) release() {
	s.values.release()
	s.indptr.release()
	s.indices.release()
}

func (s *csrStorage) unique() bool { return s.values.isUnique() }
func (s *csrStorage) stored() int  { return s.values.len() }

// rowSparseStorage holds only the listed rows of a 2-D matrix.
// Row j of values (cols wide) is dense row indices[j].
type rowSparseStorage struct {
	values  *buffer[float32]
	indices *buffer[int64]
}

func (s *rowSparseStorage) retain() {
	s.values.addRef()
	s.indices.addRef()
}

func (s *rowSparseStorage) release() {
	s.values.release()
	s.indices.release()
}

func (s *rowSparseStorage) unique() bool { return s.values.isUnique() }
func (s *rowSparseStorage) stored() int  { return s.values.len() }
