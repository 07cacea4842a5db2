package list

import "strings"

func (l *List) IsEmpty() bool {
	return l.len == 0
}

func (l *List) Contains(value string) bool {
	return l.Find(value) != nil
}

// Array returns the values from head to tail.
func (l *List) Array() []string {
	if l.len == 0 {
		return nil
	}
	array := make([]string, 0, l.len)
	for node := l.head; node != nil; node = node.Next() {
		array = append(array, node.value)
	}
	return array
}

// ReverseArray returns the values from tail to head, following Previous links.
func (l *List) ReverseArray() []string {
	if l.len == 0 {
		return nil
	}
	array := make([]string, 0, l.len)
	for node := l.tail; node != nil; node = node.Previous() {
		array = append(array, node.value)
	}
	return array
}

// Clear detaches every node and leaves l empty.
func (l *List) Clear() {
	for node := l.head; node != nil; {
		next := node.next
		node.prev = nil
		node.next = nil
		node.list = nil
		node = next
	}
	l.head = nil
	l.tail = nil
	l.len = 0
}

func (l *List) String() string {
	return "[" + strings.Join(l.Array(), " ") + "]"
}
