package entity

// MaxReplyDepth bounds how deep the reply affordance goes. Nodes below
// this depth can be replied to; deeper nodes still render but cannot
// spawn another form.
const MaxReplyDepth = 4

// CommentNode is one comment in a flight's discussion. ParentID is empty
// at a tree root. Children are stored as an ordered id list in the owning
// Thread, not nested here, so traversal depth is never tied to ownership
// depth.
type CommentNode struct {
	ID        string `json:"id" bson:"_id"`
	User      string `json:"user" bson:"user"`
	Text      string `json:"text" bson:"text"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
	ParentID  string `json:"parentId,omitempty" bson:"parentId,omitempty"`
}

// Thread is the comment tree for one flight, kept as an arena: nodes by
// id, child-id lists per node, and the ordered roots. Insertion order is
// display order throughout.
type Thread struct {
	FlightID string
	nodes    map[string]*CommentNode
	children map[string][]string
	roots    []string
}

// NewThread creates an empty thread for a flight.
func NewThread(flightID string) *Thread {
	return &Thread{
		FlightID: flightID,
		nodes:    make(map[string]*CommentNode),
		children: make(map[string][]string),
	}
}

// Append inserts node at the tail of its parent's child list, or of the
// roots when ParentID is empty. Returns false if the id already exists or
// the parent is unknown.
func (t *Thread) Append(node *CommentNode) bool {
	if node.ID == "" {
		return false
	}
	if _, exists := t.nodes[node.ID]; exists {
		return false
	}
	if node.ParentID == "" {
		t.roots = append(t.roots, node.ID)
	} else {
		if _, ok := t.nodes[node.ParentID]; !ok {
			return false
		}
		t.children[node.ParentID] = append(t.children[node.ParentID], node.ID)
	}
	t.nodes[node.ID] = node
	return true
}

// Get returns the node with the given id, or nil.
func (t *Thread) Get(id string) *CommentNode {
	return t.nodes[id]
}

// Replies returns the ordered child ids of a node.
func (t *Thread) Replies(id string) []string {
	return t.children[id]
}

// Len returns the number of comments in the thread.
func (t *Thread) Len() int {
	return len(t.nodes)
}

// RenderedComment is one row of a depth-first rendering of a thread.
type RenderedComment struct {
	Node     *CommentNode
	Depth    int
	CanReply bool
}

// Walk produces the thread in display order: depth-first, siblings in
// insertion order. CanReply is false once Depth reaches MaxReplyDepth,
// but deeper nodes are still emitted with their content and children.
func (t *Thread) Walk() []RenderedComment {
	type frame struct {
		id    string
		depth int
	}
	out := make([]RenderedComment, 0, len(t.nodes))

	// Push roots in reverse so the stack pops them in insertion order.
	stack := make([]frame, 0, len(t.roots))
	for i := len(t.roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{id: t.roots[i], depth: 0})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node, ok := t.nodes[f.id]
		if !ok {
			continue
		}
		out = append(out, RenderedComment{
			Node:     node,
			Depth:    f.depth,
			CanReply: f.depth < MaxReplyDepth,
		})

		kids := t.children[f.id]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: kids[i], depth: f.depth + 1})
		}
	}
	return out
}

// SampleThread is the seeded discussion for flight AA123.
func SampleThread() *Thread {
	t := NewThread("AA123")
	t.Append(&CommentNode{
		ID:        "1",
		User:      "Traveler123",
		Text:      "Any delays expected today?",
		Timestamp: "2025-01-29T14:30:00Z",
	})
	t.Append(&CommentNode{
		ID:        "2",
		User:      "FlightWatcher",
		Text:      "All looks on time so far!",
		Timestamp: "2025-01-29T15:00:00Z",
		ParentID:  "1",
	})
	return t
}
