/*
Package pcb validates the connectivity of printed circuit board designs and
classifies their connections so that a simulator can drive them.

A design (see Design) names chip instances, the wires between their pins and
the pins exposed to the outside world. It is usually obtained by parsing a
design file with package pcbdl:

	ram_board {
		chip cpu;
		chip ram;
		cpu::addr - ram::addr;
		cpu::data - ram::data;
		expose cpu::reset;
	}

Actual chips, anything implementing the Chip interface, are then added to a
Builder which checks the design against them:

	b, err := pcb.NewBuilder(design).
		AddChip("cpu", cpu).
		AddChip("ram", ram).
		Build()

Pins connected by wires, directly or not, form a group. Each group of a valid
design becomes one of:

	Pair       one output driving one receiver
	Broadcast  one output driving several receivers
	Tristated  several tristatable outputs sharing a bus

Two permanent (non-tristatable) outputs can never be shorted together, and a
group where some but not all pins are tristatable is invalid.

Custom chips can be written by hand or generated from a tagged struct with
MakeChip.
*/
package pcb
