package splitter

// Matrix is a dense P×P debt matrix indexed by participant position.
// Cell (debtor, creditor) holds the accumulated amount debtor owes creditor.
// Every cell is explicitly zero at construction; there is no auto-create on
// access, and iteration always follows participant order, which keeps outputs
// deterministic.
type Matrix struct {
	participants []string
	index        map[string]int
	cells        []float64
}

// NewMatrix creates a zeroed matrix over the given participant order.
func NewMatrix(participants []string) *Matrix {
	n := len(participants)
	index := make(map[string]int, n)
	for i, p := range participants {
		index[p] = i
	}
	return &Matrix{
		participants: participants,
		index:        index,
		cells:        make([]float64, n*n),
	}
}

// Participants returns the participant order the matrix is indexed by.
func (m *Matrix) Participants() []string {
	return m.participants
}

// Len returns the number of participants.
func (m *Matrix) Len() int {
	return len(m.participants)
}

// Add accumulates amount onto the (debtor, creditor) cell.
// Unknown names are ignored; callers resolve names against the participant
// set before accumulating.
func (m *Matrix) Add(debtor, creditor string, amount float64) {
	d, ok := m.index[debtor]
	if !ok {
		return
	}
	c, ok := m.index[creditor]
	if !ok {
		return
	}
	m.cells[d*len(m.participants)+c] += amount
}

// Set overwrites the (debtor, creditor) cell by position.
func (m *Matrix) Set(debtor, creditor int, amount float64) {
	m.cells[debtor*len(m.participants)+creditor] = amount
}

// At returns the (debtor, creditor) cell by position.
func (m *Matrix) At(debtor, creditor int) float64 {
	return m.cells[debtor*len(m.participants)+creditor]
}

// Amount returns the (debtor, creditor) cell by name. Unknown names read as
// zero, matching the zero-default of the dense representation.
func (m *Matrix) Amount(debtor, creditor string) float64 {
	d, ok := m.index[debtor]
	if !ok {
		return 0
	}
	c, ok := m.index[creditor]
	if !ok {
		return 0
	}
	return m.At(d, c)
}
