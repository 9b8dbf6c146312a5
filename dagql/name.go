// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dagql

import "github.com/mikesol/dagql/graph"

// Name inserts an alias pseudo-entry "@<alias>" bound to targetID, for
// later declarative selection via ByName(alias). Aliases do not
// contribute to evaluation; Commit's dangling-child check still applies,
// so naming an id absent from p fails with ErrDanglingChild.
func Name(p graph.Program, alias, targetID string) (graph.Program, error) {
	s := Dirty(p)
	s.AddEntry(graph.AliasPrefix+alias, graph.Entry{
		Kind:     graph.AliasKind,
		Children: []string{targetID},
	})
	return Commit(s)
}
