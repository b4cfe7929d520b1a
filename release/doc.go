// Package release reads vendor "robot release" XML documents, locates
// embedded source code inside contents/object/process/stage trees, and
// writes each code block out as its own file, extensioned by the
// declared language of the owning stage.
package release
