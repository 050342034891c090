// This file is part of Padmux.
//
// Padmux is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padmux is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padmux.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"gopkg.in/yaml.v3"
)

// yaml tag for each kind of pref
var yamlTags = map[Kind]string{
	KindBool:  "!!bool",
	KindUInt:  "!!int",
	KindFloat: "!!float",
}

// MarshalYAML implements the yaml.Marshaler interface. The registry is
// marshalled as a mapping in table order.
func (reg *Registry) MarshalYAML() (any, error) {
	n := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, o := range reg.options {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: o.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: yamlTags[o.Value.Kind()], Value: o.Value.String()},
		)
	}

	return n, nil
}
