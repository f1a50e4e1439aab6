// Package envmap provides the ordered environment mapping shared by the
// dotenv parser, the default generator and the workspace patcher.
//
// A Map behaves like a plain map[string]string with one difference: keys
// remember the order in which they were first inserted. Overwriting a key
// replaces its value but keeps its position, so a file with a repeated key
// still yields the value of the last occurrence at the place of the first.
//
// Key operations:
//
//   - Set/Get/Lookup: read and write single entries
//   - All/Keys: iterate in insertion order
//   - Merge/MergeMissing: add default entries without overwriting
package envmap
