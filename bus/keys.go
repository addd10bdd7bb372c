package bus

// ChannelKey declares a broadcast channel carrying payloads of type T.
// Declare keys as package-level values shared by publishers and
// subscribers:
//
//	var AcceptedBlocks = bus.ChannelKey[Block]("chain.accepted_blocks")
//
// The string is the endpoint's stable identity; the type parameter binds
// every lookup to the same payload type at compile time. Reusing a string
// with a different payload type is caught at lookup (ErrEndpointType).
type ChannelKey[T any] string

// MethodKey declares a request/response method taking Req and returning
// Resp:
//
//	var GetHead = bus.MethodKey[HeadQuery, Block]("chain.get_head")
type MethodKey[Req any, Resp any] string
