/*
Package newick provides facilities for reading, writing and drawing trees in
the Newick format. The format used is roughly equivalent to the conventions
established here:
http://evolution.genetics.washington.edu/phylip/newick_doc.html. Although,
comments and quoted labels are not (yet) implemented.

An informal description of the Newick format can be found here:
http://evolution.genetics.washington.edu/phylip/newicktree.html.

A tree is a graph of Node values, each of which is either a *Leaf or an
*Internal node. Trees are built once (by Parse, a Reader or a clustering
routine) and never modified afterwards; Marshal, Writer and Render only read
them.

Parsing is lenient. Missing or malformed branch lengths become 0, unnamed
internal nodes get the Placeholder label, and input with unbalanced
parentheses yields an empty *Internal node alongside a *ParseError.
*/
package newick
