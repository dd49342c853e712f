package components

// List is a cursor over n rows with a scrolling window of PageSize rows.
type List struct {
	Len      int
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates a list with the given page size.
func NewList(pageSize int) *List {
	return &List{PageSize: max(pageSize, 1)}
}

// Reset replaces the row count and moves the cursor to the top.
func (l *List) Reset(n int) {
	l.Len = n
	l.Cursor = 0
	l.Offset = 0
}

// Resize changes the row count, keeping the cursor where it was when that
// row still exists.
func (l *List) Resize(n int) {
	l.Len = n
	if l.Cursor >= n {
		l.Cursor = max(n-1, 0)
	}
	l.clampWindow()
}

// SetPageSize changes the window height.
func (l *List) SetPageSize(size int) {
	l.PageSize = max(size, 1)
	l.clampWindow()
}

// Down moves the cursor down.
func (l *List) Down() {
	if l.Cursor < l.Len-1 {
		l.Cursor++
		l.clampWindow()
	}
}

// Up moves the cursor up.
func (l *List) Up() {
	if l.Cursor > 0 {
		l.Cursor--
		l.clampWindow()
	}
}

// Window returns the half-open range of visible rows.
func (l *List) Window() (start, end int) {
	return l.Offset, min(l.Offset+l.PageSize, l.Len)
}

// Selected returns the cursor index, or -1 when the list is empty.
func (l *List) Selected() int {
	if l.Len == 0 {
		return -1
	}
	return l.Cursor
}

func (l *List) clampWindow() {
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor >= l.Offset+l.PageSize {
		l.Offset = l.Cursor - l.PageSize + 1
	}
	if maxOffset := max(l.Len-l.PageSize, 0); l.Offset > maxOffset {
		l.Offset = maxOffset
	}
}
