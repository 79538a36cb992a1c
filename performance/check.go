// This file is part of Gbemulator.
//
// Gbemulator is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gbemulator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gbemulator.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/RustLoverTheCoder/gbemulator/curated"
	"github.com/RustLoverTheCoder/gbemulator/hardware"
	"github.com/RustLoverTheCoder/gbemulator/hardware/memory/bus"
	"github.com/RustLoverTheCoder/gbemulator/statsview"
)

// ClockSpeed is the number of machine cycles per second of the real DMG.
const ClockSpeed = 4194304.0

// Check the performance of the emulation using the supplied cartridge.
//
// The emulation runs for the specified duration and will create a CPU and
// memory profile, as requested by the profile argument. If the stats
// argument is true, and the binary was built with the statsview build tag, a
// runtime statistics server is launched alongside the run.
func Check(output io.Writer, profile bool, stats bool, cart bus.CartridgeBus, boot bus.CartridgeBus, duration string) error {
	gb := hardware.NewGameBoy(cart, boot)

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			output.Write([]byte("statsview not available. rebuild with the statsview build tag\n"))
		}
	}

	startCycles := gb.TotalCycles
	instructions := 0

	err = cpuProfile(profile, "cpu.profile", func() error {
		// trigger that expires when the duration has elapsed
		timesUp := make(chan bool)

		go func() {
			time.AfterFunc(dur, func() {
				timesUp <- true
			})
		}()

		// checking the timesUp channel is relatively expensive so it is only
		// polled every PerformanceBrake instructions
		performanceFilter := 0

		return gb.Run(func() (bool, error) {
			instructions++
			performanceFilter++
			if performanceFilter >= hardware.PerformanceBrake {
				performanceFilter = 0
				select {
				case <-timesUp:
					return false, nil
				default:
				}
			}
			return true, nil
		})
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	cycles := gb.TotalCycles - startCycles
	output.Write([]byte(fmt.Sprintf("%.0f instructions/sec, %.0f cycles/sec (%.2fx real speed)\n",
		float64(instructions)/dur.Seconds(),
		float64(cycles)/dur.Seconds(),
		float64(cycles)/dur.Seconds()/ClockSpeed)))

	return memProfile(profile, "mem.profile")
}
