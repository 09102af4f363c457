// Demo of the MXP frame codec and A2A bridge working end to end:
// build an A2A message, bridge it onto an MXP frame, encode it to the
// wire, decode it back, and bridge it back into an A2A result.
package main

import (
	"fmt"

	"github.com/Zameneing/mxp-go/a2a/bridge"
	"github.com/Zameneing/mxp-go/frame"

	"github.com/Zameneing/mxp-go/a2a"
)

func main() {
	fmt.Println("=== Example 1: message/send round trip ===")

	msg := a2a.UserText("what's the weather in Boston?")

	mxpFrame, err := bridge.ToMXP(msg)
	if err != nil {
		fmt.Println("bridge.ToMXP failed:", err)
		return
	}
	fmt.Printf("frame kind=%s message_id=%d payload_len=%d\n", mxpFrame.Kind, mxpFrame.MessageID, len(mxpFrame.Payload))

	wire, err := frame.Encode(mxpFrame)
	if err != nil {
		fmt.Println("frame.Encode failed:", err)
		return
	}
	fmt.Printf("encoded %d bytes\n", len(wire))

	decoded, err := frame.Decode(wire)
	if err != nil {
		fmt.Println("frame.Decode failed:", err)
		return
	}

	result, err := bridge.FromMXP(decoded)
	if err != nil {
		fmt.Println("bridge.FromMXP failed:", err)
		return
	}
	fmt.Printf("method=%s role=%s text=%q\n", result.Method, result.Message.Role, result.Message.TextContent())

	fmt.Println()
	fmt.Println("=== Example 2: a streamed response ===")

	open, err := bridge.ToMXPStreamOpen(a2a.AgentText(""))
	if err != nil {
		fmt.Println("bridge.ToMXPStreamOpen failed:", err)
		return
	}

	chunks := []frame.Frame{
		bridge.ToMXPStreamChunk("Boston is ", open),
		bridge.ToMXPStreamChunk("62°F and cloudy.", open),
	}

	for _, c := range chunks {
		r, err := bridge.FromMXP(c)
		if err != nil {
			fmt.Println("stream chunk decode failed:", err)
			return
		}
		fmt.Printf("chunk: %q\n", string(r.RawPayload))
	}

	close := bridge.ToMXPStreamClose(open)
	fmt.Printf("stream closed, correlates to open message_id=%d\n", close.CorrelationID)
}
