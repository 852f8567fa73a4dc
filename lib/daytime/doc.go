/*
Package daytime defines wall-clock times of day and periods for starlark,
backed by the Go package go.daytime.dev/daytime.

	outline: daytime
	  daytime defines times of day and the periods between them
	  path: daytime
	  functions:
	    time(hours=0, minutes=0, seconds=0) time
	      construct a time, failing if a field is out of range
	    parse_time(string) time
	      parse a time of the form H:M:S, one or two digits per field
	    period(start, end) period
	      the period from start forward to end; either may be a time or
	      a string, and end before start means the following day
	    parse_period(string) period
	      parse an elapsed time of the form H:M:S, starting at midnight
	    seconds(int) period
	      a period of the given seconds, starting at midnight
	    of(time.time) time
	      the wall-clock reading of a time.time value
	    now() time
	      the current wall-clock time
	    midnight time
	      a constant
	    seconds_per_day int
	      a constant

	  types:
	    time
	      fields:
	        hours int
	        minutes int
	        seconds int
	        since_midnight time.duration
	      functions:
	        until(time) period
	          the period from this time forward to the given one
	      operators:
	        time == time = boolean
	        time < time = boolean
	        time + period = time
	        time - period = time
	        time - time = period
	    period
	      fields:
	        start time
	        end time
	        elapsed int
	        duration time.duration
	      operators:
	        period == period = boolean
	        period < period = boolean
	        period + period = period
	        period - period = period
	        period + time = time
*/
package daytime // import "go.daytime.dev/lib/daytime"
