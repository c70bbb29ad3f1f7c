package rod

import (
	"fmt"
	"strconv"

	"watcher/internal/domain/entity"

	"github.com/ysmood/gson"
)

const indexAttribute = "data-watcher-index"

// indexElementsJS tags every visible interactive element with its index and returns
// a description of each. Indices from the previous call are cleared first.
const indexElementsJS = `(max) => {
	const selector = 'a[href], button, input:not([type=hidden]), textarea, select, summary, ' +
		'[role=button], [role=link], [role=tab], [role=menuitem], [onclick], [contenteditable=true]';

	const xpathOf = (el) => {
		const parts = [];
		for (; el && el.nodeType === Node.ELEMENT_NODE; el = el.parentNode) {
			let idx = 1;
			for (let sib = el.previousElementSibling; sib; sib = sib.previousElementSibling) {
				if (sib.nodeName === el.nodeName) idx++;
			}
			parts.unshift(el.nodeName.toLowerCase() + '[' + idx + ']');
		}
		return parts.length ? '/' + parts.join('/') : '';
	};

	const visible = (el) => {
		const rect = el.getBoundingClientRect();
		const style = window.getComputedStyle(el);
		return rect.width > 0 && rect.height > 0 && style.visibility !== 'hidden' && style.display !== 'none';
	};

	document.querySelectorAll('[data-watcher-index]').forEach((el) => el.removeAttribute('data-watcher-index'));

	const out = [];
	for (const el of document.querySelectorAll(selector)) {
		if (out.length >= max) break;
		if (!visible(el)) continue;

		const index = out.length;
		el.setAttribute('data-watcher-index', String(index));

		const attributes = {};
		for (const key of ['type', 'name', 'href', 'placeholder', 'aria-label']) {
			const v = el.getAttribute(key);
			if (v) attributes[key] = v;
		}
		const text = (el.innerText || el.value || '').replace(/\s+/g, ' ').trim();
		out.push({index, tag: el.tagName.toLowerCase(), text, xpath: xpathOf(el), attributes});
	}
	return out;
}`

type indexedElement struct {
	Index      int               `json:"index"`
	Tag        string            `json:"tag"`
	Text       string            `json:"text"`
	XPath      string            `json:"xpath"`
	Attributes map[string]string `json:"attributes"`
}

func parseIndexedElements(v gson.JSON) (entity.SelectorMap, error) {
	var elements []indexedElement
	if err := v.Unmarshal(&elements); err != nil {
		return nil, fmt.Errorf("failed to decode element index: %w", err)
	}

	selectors := make(entity.SelectorMap, len(elements))
	for _, e := range elements {
		node := entity.ElementNode{
			Index:      e.Index,
			Tag:        e.Tag,
			Text:       e.Text,
			Selector:   indexSelector(e.Index),
			Attributes: e.Attributes,
		}
		if e.XPath != "" {
			xpath := e.XPath
			node.XPath = &xpath
		}
		selectors[e.Index] = node
	}
	return selectors, nil
}

func indexSelector(index int) string {
	return "[" + indexAttribute + `="` + strconv.Itoa(index) + `"]`
}
