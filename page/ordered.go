package page

// orderedPages 是按插入顺序迭代的子页面映射。
// 重复 Set 同名键会原位替换，不改变该键的位置。
type orderedPages struct {
	names []string
	pages map[string]*Page
}

func newOrderedPages() *orderedPages {
	return &orderedPages{pages: make(map[string]*Page)}
}

func (o *orderedPages) Set(name string, p *Page) {
	if _, exists := o.pages[name]; !exists {
		o.names = append(o.names, name)
	}
	o.pages[name] = p
}

func (o *orderedPages) Get(name string) (*Page, bool) {
	p, ok := o.pages[name]
	return p, ok
}

func (o *orderedPages) Delete(name string) {
	if _, exists := o.pages[name]; !exists {
		return
	}
	delete(o.pages, name)
	for i, n := range o.names {
		if n == name {
			o.names = append(o.names[:i], o.names[i+1:]...)
			break
		}
	}
}

func (o *orderedPages) Len() int {
	return len(o.names)
}

// Values 按插入顺序返回所有子页面
func (o *orderedPages) Values() []*Page {
	out := make([]*Page, 0, len(o.names))
	for _, n := range o.names {
		out = append(out, o.pages[n])
	}
	return out
}

func (o *orderedPages) Names() []string {
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}
