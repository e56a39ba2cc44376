package types

import "fmt"

// NodeInfo identifies a peer. Values are comparable and used as set keys.
type NodeInfo struct {
	Number uint32
	Name   string
	Addr   string
}

func (n NodeInfo) String() string {
	return fmt.Sprintf("node(%d:%s)", n.Number, n.Name)
}
