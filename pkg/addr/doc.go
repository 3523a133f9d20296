// Copyright 2026 VollmondT
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package addr contains a family-agnostic abstraction over IPv4 and IPv6
transport endpoint addresses, used by connectivity-establishment logic that
must compare, classify, normalize and resolve peer addresses without knowing
in advance which address family a peer will use.

Different address families are represented with a single Addr value type,
discriminated by a Family tag. The payload is only ever interpreted under its
own tag: operations on an address whose family is neither INET nor INET6
degrade to a documented zero/false result and emit a warning-level
diagnostic, they never reinterpret payload bytes.

Addr values can be converted in place between an IPv4 address and its
IPv4-mapped IPv6 equivalent (the ::ffff:a.b.c.d form), preserving the port.
The wire encoding produced by Sockaddr and consumed by ParseSockaddr is
bit-exact with the Linux sockaddr_in and sockaddr_in6 layouts.
*/
package addr
