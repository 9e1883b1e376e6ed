package traversal

// Pair is one prompt/answer association.
type Pair struct {
	Prompt string
	Answer string
}

// AnswerMap is the insertion-ordered prompt->answer mapping for one
// traversal session. Re-answering a revisited question overwrites the
// value but keeps the original position.
type AnswerMap struct {
	order []string
	vals  map[string]string
}

func NewAnswerMap() *AnswerMap {
	return &AnswerMap{vals: make(map[string]string)}
}

func (m *AnswerMap) Set(prompt, answer string) {
	if _, ok := m.vals[prompt]; !ok {
		m.order = append(m.order, prompt)
	}
	m.vals[prompt] = answer
}

func (m *AnswerMap) Get(prompt string) (string, bool) {
	v, ok := m.vals[prompt]
	return v, ok
}

func (m *AnswerMap) Len() int {
	return len(m.order)
}

// Pairs returns the associations in insertion order.
func (m *AnswerMap) Pairs() []Pair {
	out := make([]Pair, 0, len(m.order))
	for _, p := range m.order {
		out = append(out, Pair{Prompt: p, Answer: m.vals[p]})
	}
	return out
}
