package browser

// snapshotScript serializes the rendered document into the nested node shape
// decoded by domtree.DecodeSnapshot: per element its tag, attributes, the
// computed-style subset the analyzer reads, and the bounding rect. Script,
// style and comment nodes are dropped at the source. A node cap bounds the
// payload on degenerate pages.
func snapshotScript() string {
	return `(() => {
		try {
			const maxNodes = 5000;
			let count = 0;

			const serialize = (node) => {
				if (count >= maxNodes) return null;

				if (node.nodeType === Node.TEXT_NODE) {
					const text = node.textContent.trim();
					if (!text) return null;
					count++;
					return { tag: '#text', text: text.substring(0, 500) };
				}

				if (node.nodeType !== Node.ELEMENT_NODE) return null;

				const tag = node.tagName.toLowerCase();
				if (tag === 'script' || tag === 'style' || tag === 'noscript') return null;

				count++;

				const attrs = {};
				for (const a of node.attributes) {
					attrs[a.name] = a.value.substring(0, 500);
				}

				const cs = window.getComputedStyle(node);
				const style = {
					display: cs.display,
					visibility: cs.visibility,
					opacity: cs.opacity,
					direction: cs.direction
				};

				const rect = node.getBoundingClientRect();
				const out = {
					tag: tag,
					attrs: attrs,
					style: style,
					rect: {
						x: rect.x,
						y: rect.y,
						width: rect.width,
						height: rect.height
					},
					children: []
				};

				for (const child of node.childNodes) {
					const c = serialize(child);
					if (c) out.children.push(c);
				}

				return out;
			};

			return {
				url: window.location.href,
				title: document.title,
				docDirection: document.dir || '',
				bodyDirection: document.body ? window.getComputedStyle(document.body).direction : '',
				root: serialize(document.documentElement)
			};
		} catch (e) {
			return { error: String(e) };
		}
	})()`
}
