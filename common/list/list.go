// Package list implements a doubly linked list of strings.
//
// Nodes are appended at the tail and looked up by value. The zero value of
// List is an empty list ready to use.
package list

// Node is an element of a List.
type Node struct {
	prev, next *Node

	// The list this node belongs to, nil once removed.
	list *List

	value string
}

// Value returns the string stored in n.
func (n *Node) Value() string {
	return n.value
}

// Next returns the following node or nil.
func (n *Node) Next() *Node {
	if n.list == nil {
		return nil
	}
	return n.next
}

// Previous returns the preceding node or nil.
func (n *Node) Previous() *Node {
	if n.list == nil {
		return nil
	}
	return n.prev
}

// List is a doubly linked list of strings.
// It is not safe for concurrent use.
type List struct {
	head *Node
	tail *Node
	len  int
}

func New() *List {
	return new(List)
}

// Head returns the first node or nil if the list is empty.
func (l *List) Head() *Node {
	return l.head
}

// Tail returns the last node or nil if the list is empty.
func (l *List) Tail() *Node {
	return l.tail
}

// Len returns the number of nodes in l.
func (l *List) Len() int {
	return l.len
}

// Insert appends value after the current tail and returns the new node.
// Duplicate values produce distinct nodes.
func (l *List) Insert(value string) *Node {
	node := &Node{prev: l.tail, list: l, value: value}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.len++
	return node
}

// Find returns the first node holding value, scanning from head to tail,
// or nil if there is none.
func (l *List) Find(value string) *Node {
	for node := l.head; node != nil; node = node.next {
		if node.value == value {
			return node
		}
	}
	return nil
}

// Remove unlinks the first node holding value and returns it, or returns nil
// if there is none. The returned node no longer links to any other node.
func (l *List) Remove(value string) *Node {
	node := l.Find(value)
	if node == nil {
		return nil
	}
	l.remove(node)
	return node
}

func (l *List) remove(node *Node) {
	if node.prev == nil {
		l.head = node.next
	} else {
		node.prev.next = node.next
	}
	if node.next == nil {
		l.tail = node.prev
	} else {
		node.next.prev = node.prev
	}
	node.prev = nil // avoid memory leaks
	node.next = nil // avoid memory leaks
	node.list = nil
	l.len--
}
