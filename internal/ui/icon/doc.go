// Package icon renders registry icons as inline SVG.
//
// Render builds the element tree for a set of Props; Component and Icon wrap
// it as a templ component for pages. The output shape is fixed because
// stylesheets select on it:
//
//	<span class="bp3-icon ...">
//	  <svg fill? data-icon="Print" width="S" height="S" viewBox="0 0 G G">
//	    <desc>title or icon name</desc>
//	    <path d="..." fill-rule="evenodd"></path>...
//	  </svg>
//	</span>
package icon
